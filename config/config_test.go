package config

import "testing"

func TestLoadMultiplierDivisor(t *testing.T) {
	for _, value := range []string{"0", "-3", "abc"} {
		t.Setenv("CALCULATOR_MULTIPLIER_DIVISOR", value)
		cfg := Load()
		if cfg.Calculator.MultiplierDivisor != 10 {
			t.Errorf("divisor %q: expected fallback to 10, got %d", value, cfg.Calculator.MultiplierDivisor)
		}
	}

	t.Setenv("CALCULATOR_MULTIPLIER_DIVISOR", "20")
	cfg := Load()
	if cfg.Calculator.MultiplierDivisor != 20 {
		t.Errorf("expected 20, got %d", cfg.Calculator.MultiplierDivisor)
	}
}
