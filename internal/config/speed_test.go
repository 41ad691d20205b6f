package config

import "testing"

func TestParseSpeedPreset(t *testing.T) {
	tests := []struct {
		in      string
		want    SpeedPreset
		wantErr bool
	}{
		{"slow", SpeedSlow, false},
		{"Normal", SpeedNormal, false},
		{" FAST ", SpeedFast, false},
		{"ludicrous", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseSpeedPreset(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseSpeedPreset(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseSpeedPreset(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplySpeedPreset(t *testing.T) {
	cfg := DefaultSnakeConfig()
	cfg.Setup.Speeds[0].TickMS = 150 // "Slow"

	ApplySpeedPreset(&cfg, SpeedSlow)
	if cfg.Timing.TickMS != 150 {
		t.Errorf("slow tick = %d, want setup value 150", cfg.Timing.TickMS)
	}

	cfg.Setup.Speeds = nil
	ApplySpeedPreset(&cfg, SpeedFast)
	if cfg.Timing.TickMS != TickForPreset(SpeedFast) {
		t.Errorf("fast tick = %d, want built-in %d", cfg.Timing.TickMS, TickForPreset(SpeedFast))
	}
}

func TestOverridesApply(t *testing.T) {
	tests := []struct {
		name      string
		o         Overrides
		wantTick  int
		wantColor string
		wantErr   bool
	}{
		{"none", Overrides{}, 80, "#228b22", false},
		{"speed", Overrides{Speed: "fast"}, 50, "#228b22", false},
		{"tick wins over speed", Overrides{Speed: "slow", TickMS: 42}, 42, "#228b22", false},
		{"color", Overrides{Color: "#123456"}, 80, "#123456", false},
		{"bad speed", Overrides{Speed: "warp"}, 0, "", true},
		{"negative tick", Overrides{TickMS: -5}, 0, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultSnakeConfig()
			err := tt.o.Apply(&cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("Apply err = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if cfg.Timing.TickMS != tt.wantTick {
				t.Errorf("tick = %d, want %d", cfg.Timing.TickMS, tt.wantTick)
			}
			if cfg.Snake.Color != tt.wantColor {
				t.Errorf("color = %q, want %q", cfg.Snake.Color, tt.wantColor)
			}
		})
	}
}
