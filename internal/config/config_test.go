package config

import "testing"

func TestValidateNormalizesZeroJobs(t *testing.T) {
	c := DefaultRenderConfig()
	c.Jobs = 0
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Jobs != 1 {
		t.Errorf("expected Jobs normalized to 1, got %d", c.Jobs)
	}
}

func TestValidateLeavesPositiveJobsAlone(t *testing.T) {
	c := DefaultRenderConfig()
	c.Jobs = 8
	if err := c.Validate(); err != nil {
		t.Fatal(err)
	}
	if c.Jobs != 8 {
		t.Errorf("expected Jobs to stay 8, got %d", c.Jobs)
	}
}
