package testharness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateRequest(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "valid", doc: `{"input":"World"}`},
		{name: "extra fields", doc: `{"input":"World","other":true}`},
		{name: "missing input", doc: `{"other":true}`, wantErr: true},
		{name: "boolean input", doc: `{"input":true}`, wantErr: true},
		{name: "string document", doc: `"World"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequest([]byte(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrParse)

				return
			}

			assert.NoError(t, err)
		})
	}
}

func TestValidateRequestNamesField(t *testing.T) {
	err := ValidateRequest([]byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "input")
}

func TestValidateResponse(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "valid", doc: `{"class":"org.accordproject.helloworld.MyResponse","output":"Hello Fred Blogs World"}`},
		{name: "other class", doc: `{"class":"org.accordproject.helloworld.MyRequest","output":"x"}`, wantErr: true},
		{name: "missing output", doc: `{"class":"org.accordproject.helloworld.MyResponse"}`, wantErr: true},
		{name: "not json", doc: `{"class":`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateResponse([]byte(tt.doc))
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrSerialize)

				return
			}

			assert.NoError(t, err)
		})
	}
}
