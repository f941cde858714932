package errors

import (
	"strings"
	"testing"
)

func TestValidatePageName(t *testing.T) {
	tests := []struct {
		name    string
		page    string
		wantErr bool
	}{
		{name: "Valid", page: "TacDashboard"},
		{name: "ValidWithDigits", page: "OrderList2"},
		{name: "Empty", page: "", wantErr: true},
		{name: "TooLong", page: strings.Repeat("a", 257), wantErr: true},
		{name: "ControlChar", page: "Tac\x01Dashboard", wantErr: true},
		{name: "Traversal", page: "../etc/passwd", wantErr: true},
		{name: "Slash", page: "pages/home", wantErr: true},
		{name: "Backslash", page: "pages\\home", wantErr: true},
		{name: "NullByte", page: "Tac\x00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePageName(tt.page)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidatePageName(%q) err = %v, wantErr %v", tt.page, err, tt.wantErr)
			}
			if err != nil && !Is(err, ErrCodeInvalidPage) {
				t.Errorf("error code = %s, want %s", GetCode(err), ErrCodeInvalidPage)
			}
		})
	}
}

func TestValidateRoleName(t *testing.T) {
	if err := ValidateRoleName("Admin"); err != nil {
		t.Errorf("ValidateRoleName(Admin) = %v", err)
	}
	if err := ValidateRoleName(""); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("empty role: code = %s, want %s", GetCode(err), ErrCodeInvalidConfig)
	}
	if err := ValidateRoleName("Admin/Root"); !Is(err, ErrCodeInvalidConfig) {
		t.Errorf("bad role: code = %s, want %s", GetCode(err), ErrCodeInvalidConfig)
	}
}

func TestValidateOutputPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "Relative", path: "out/distances.json"},
		{name: "Absolute", path: "/tmp/distances.json"},
		{name: "Empty", path: "", wantErr: true},
		{name: "TooLong", path: strings.Repeat("a", 501), wantErr: true},
		{name: "NullByte", path: "out\x00.json", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputPath(tt.path)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputPath(%q) err = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
		})
	}
}
