package main

import "testing"

func TestParseConvertFlags(t *testing.T) {
	t.Parallel()

	args := []string{"docs", "-o", "site", "-w", "4", "--dry-run", "-v"}
	flags, positional, err := parseConvertFlags(args)
	if err != nil {
		t.Fatalf("parseConvertFlags() error: %v", err)
	}

	if flags.output != "site" {
		t.Errorf("output = %q, want %q", flags.output, "site")
	}
	if flags.workers != 4 {
		t.Errorf("workers = %d, want 4", flags.workers)
	}
	if !flags.dryRun {
		t.Errorf("dryRun = false, want true")
	}
	if !flags.verbose {
		t.Errorf("verbose = false, want true")
	}
	if flags.quiet {
		t.Errorf("quiet = true, want false")
	}
	if len(positional) != 1 || positional[0] != "docs" {
		t.Errorf("positional = %q, want [docs]", positional)
	}
}

func TestParseConvertFlagsDefaults(t *testing.T) {
	t.Parallel()

	flags, positional, err := parseConvertFlags(nil)
	if err != nil {
		t.Fatalf("parseConvertFlags() error: %v", err)
	}

	if flags.output != "" || flags.workers != 0 || flags.dryRun || flags.quiet || flags.verbose {
		t.Errorf("defaults = %+v, want zero values", flags)
	}
	if len(positional) != 0 {
		t.Errorf("positional = %q, want none", positional)
	}
}

func TestParseConvertFlagsUnknownFlag(t *testing.T) {
	t.Parallel()

	if _, _, err := parseConvertFlags([]string{"--bogus"}); err == nil {
		t.Errorf("parseConvertFlags(--bogus) = nil error, want error")
	}
}
