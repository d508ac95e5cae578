package dialog

import (
	"testing"

	"vectoriser/internal/config"
	"vectoriser/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	o := Defaults()

	assert.Equal(t, "Images", o.FilterName)
	assert.Equal(t, []string{"jpg", "jpeg", "png"}, o.Extensions)
	assert.Equal(t, "Select an image", o.Title)
	assert.False(t, o.Multiple)
	assert.Empty(t, o.StartDir)
}

func TestFromConfigCopiesExtensions(t *testing.T) {
	cfg := config.New()
	o := FromConfig(cfg)

	cfg.Dialog.Extensions[0] = "bmp"
	assert.Equal(t, "jpg", o.Extensions[0])
}

func TestWithStartDir(t *testing.T) {
	o := Defaults()
	moved := o.WithStartDir("/tmp")

	assert.Equal(t, "/tmp", moved.StartDir)
	assert.Empty(t, o.StartDir)

	moved.Extensions[0] = "gif"
	assert.Equal(t, "jpg", o.Extensions[0])
}

func TestDotExtensions(t *testing.T) {
	assert.Equal(t, []string{".jpg", ".jpeg", ".png"}, Defaults().DotExtensions())
}

func TestPattern(t *testing.T) {
	assert.Equal(t, "*.{jpg,jpeg,png}", Defaults().Pattern())
	assert.Equal(t, "*.png", Options{Extensions: []string{"png"}}.Pattern())
	assert.Equal(t, "*", Options{}.Pattern())
}

func TestAllows(t *testing.T) {
	o := Defaults()

	tests := []struct {
		path string
		want bool
	}{
		{"/tmp/a.png", true},
		{"/tmp/b.jpg", true},
		{"photo.jpeg", true},
		{"/tmp/notes.txt", false},
		{"/tmp/a.PNG", false},
		{"/tmp/png", false},
		{"/tmp/archive.png.zip", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, o.Allows(tt.path))
		})
	}
}

func TestMatcher(t *testing.T) {
	m, err := Defaults().Matcher()
	require.NoError(t, err)
	assert.True(t, m.Match("a.png"))
	assert.True(t, m.Match("b.jpeg"))
	assert.False(t, m.Match("d.PNG"))
	assert.False(t, m.Match("notes.txt"))

	_, err = Options{Extensions: []string{"jp[g"}}.Matcher()
	require.Error(t, err)
	assert.True(t, errors.IsInvalidConfig(err))
	assert.False(t, Options{Extensions: []string{"jp[g"}}.Allows("x.jpg"))
}
