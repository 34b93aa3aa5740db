package domain

import "testing"

func TestValidateAddress(t *testing.T) {
	valid := []string{
		"0x7a250d5630B4cF539739dF2C5dAcb4c659F2488D",
		"0x0000000000000000000000000000000000000000",
		"  0xe592427a0aece92de3edee1f18e0157c05861564  ",
	}
	for _, addr := range valid {
		if err := ValidateAddress(addr); err != nil {
			t.Errorf("expected %q to be valid, got %v", addr, err)
		}
	}

	invalid := []string{
		"",
		"not-an-address",
		"0x12345",
		"0x7a250d5630b4cf539739df2c5dacb4c659f2488",    // 39 hex chars
		"0x7a250d5630b4cf539739df2c5dacb4c659f2488dd",  // 41 hex chars
		"7a250d5630b4cf539739df2c5dacb4c659f2488d",     // missing prefix
		"0xZZ250d5630b4cf539739df2c5dacb4c659f2488d",   // non-hex
	}
	for _, addr := range invalid {
		if err := ValidateAddress(addr); err != ErrInvalidAddress {
			t.Errorf("expected %q to be rejected, got %v", addr, err)
		}
	}
}

func TestNormalizeAddress(t *testing.T) {
	got := NormalizeAddress("  0x7A250d5630B4cF539739dF2C5dAcb4c659F2488D ")
	want := "0x7a250d5630b4cf539739df2c5dacb4c659f2488d"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}
