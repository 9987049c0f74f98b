package base

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCommandNames(t *testing.T) {
	tests := []struct {
		usageLine string
		longName  string
		name      string
	}{
		{"nocodb", "", ""},
		{"nocodb records list [flags] <table>", "records list", "list"},
		{"nocodb export [flags]", "export", "export"},
	}
	for _, tt := range tests {
		t.Run(tt.usageLine, func(t *testing.T) {
			c := &Command{UsageLine: tt.usageLine}
			assert.Equal(t, tt.longName, c.LongName())
			assert.Equal(t, tt.name, c.Name())
		})
	}
}

func TestSetExitStatus(t *testing.T) {
	defer func() { exitStatus = SNoError }()
	SetExitStatus(SAuthError)
	assert.Equal(t, SAuthError, ExitStatus())
	// lower status does not overwrite a higher one
	SetExitStatus(SGenericError)
	assert.Equal(t, SAuthError, ExitStatus())
}

func TestStatusCodeString(t *testing.T) {
	assert.Equal(t, "NoError", SNoError.String())
	assert.Equal(t, "UserError", SUserError.String())
	assert.Equal(t, "StatusCode(99)", StatusCode(99).String())
}
