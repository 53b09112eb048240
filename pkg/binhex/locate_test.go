package binhex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocatePayload(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    string
		wantErr string
	}{
		{
			name: "canonical",
			text: FileMarker + ":abc:\r\n",
			want: "abc",
		},
		{
			name: "leading text with colons",
			text: "Subject: hqx\r\n\r\n" + FileMarker + ":abc\r\ndef:\r\n",
			want: "abc\r\ndef",
		},
		{
			name: "other version suffix",
			text: "(This file must be converted with BinHex 5.0)\n:xyz:",
			want: "xyz",
		},
		{
			name: "empty payload",
			text: FileMarker + "::",
			want: "",
		},
		{
			name:    "missing prompt",
			text:    ":abc:",
			wantErr: "missing BinHex prompt",
		},
		{
			name:    "missing opening colon",
			text:    FileMarker + "abc",
			wantErr: "missing opening colon",
		},
		{
			name:    "missing closing colon",
			text:    FileMarker + ":abc",
			wantErr: "missing closing colon",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LocatePayload([]byte(tt.text))
			if tt.wantErr != "" {
				require.ErrorIs(t, err, ErrBadFormat)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}
