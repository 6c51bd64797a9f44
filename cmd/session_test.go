package cmd

import (
	"strings"
	"testing"

	"github.com/storekeep/storekeep"
)

func TestValidators(t *testing.T) {
	s := &session{cfg: storekeep.DefaultConfig()}

	testCases := []struct {
		name     string
		validate func(string) error
		in       string
		wantErr  bool
	}{
		{name: "name ok", validate: validateName, in: "widget"},
		{name: "name blank", validate: validateName, in: "   ", wantErr: true},
		{name: "price ok", validate: s.validatePrice, in: "12.50"},
		{name: "price negative", validate: s.validatePrice, in: "-1", wantErr: true},
		{name: "price garbage", validate: s.validatePrice, in: "twelve", wantErr: true},
		{name: "quantity ok", validate: validateQuantity, in: "0"},
		{name: "quantity fractional", validate: validateQuantity, in: "1.5", wantErr: true},
		{name: "positive quantity ok", validate: validatePositiveQuantity, in: "3"},
		{name: "positive quantity zero", validate: validatePositiveQuantity, in: "0", wantErr: true},
		{name: "optional blank", validate: optional(s.validatePrice), in: ""},
		{name: "optional invalid", validate: optional(s.validatePrice), in: "oops", wantErr: true},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.validate(tc.in)
			if (err != nil) != tc.wantErr {
				t.Errorf("validate(%q) = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
		})
	}
}

func TestSessionCmd_metadata(t *testing.T) {
	c := &sessionCmd{}
	if c.Name() != "session" {
		t.Errorf("Name() = %q", c.Name())
	}
	if !strings.Contains(c.Usage(), "skp session") {
		t.Errorf("Usage() = %q", c.Usage())
	}
}
