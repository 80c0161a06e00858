package main

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseUserID(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    uuid.UUID
		wantErr bool
	}{
		{name: "valid", value: testUser, want: uuid.MustParse(testUser)},
		{name: "empty", value: "", wantErr: true},
		{name: "not a uuid", value: "alice", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseUserID(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseOptionalLabel(t *testing.T) {
	got, err := parseOptionalLabel("")
	require.NoError(t, err)
	assert.Nil(t, got)

	got, err = parseOptionalLabel(testUser)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, testUser, got.String())
}

func TestTimeValue(t *testing.T) {
	var at time.Time
	v := newTimeValue(&at)
	assert.Equal(t, "", v.String())
	assert.Equal(t, "time", v.Type())

	require.NoError(t, v.Set("2025-03-01T09:00:00Z"))
	assert.True(t, time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC).Equal(at))
	assert.Equal(t, "2025-03-01T09:00:00Z", v.String())

	assert.Error(t, v.Set("yesterday"))
}
