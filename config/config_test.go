package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		name string
		src  string
		want *Properties
	}{
		{
			name: "defaults",
			src:  "",
			want: Default(),
		},
		{
			name: "all keys",
			src: `# godeque
impl block
CAPACITY 64
strict yes
loglevel debug
logpath /tmp/godeque
enablefilelog yes
`,
			want: &Properties{
				Impl:          "block",
				Capacity:      64,
				Strict:        true,
				LogLevel:      "debug",
				LogPath:       "/tmp/godeque",
				EnableFileLog: true,
			},
		},
		{
			name: "bad int keeps default",
			src:  "capacity lots\nstrict no",
			want: Default(),
		},
		{
			name: "negative capacity",
			src:  "capacity -3",
			want: func() *Properties {
				p := Default()
				p.Capacity = 0
				return p
			}(),
		},
		{
			name: "key without value ignored",
			src:  "impl\n   # indented comment\n",
			want: Default(),
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse(strings.NewReader(tc.src))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLoad(t *testing.T) {
	props, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), props)

	_, err = Load(filepath.Join(t.TempDir(), "missing.conf"))
	assert.Error(t, err)

	path := filepath.Join(t.TempDir(), "godeque.conf")
	require.NoError(t, os.WriteFile(path, []byte("impl block\nlogpath \n"), 0o644))
	props, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "block", props.Impl)
	assert.Equal(t, ".", props.LogPath)
	assert.True(t, filepath.IsAbs(props.CfPath))
}
