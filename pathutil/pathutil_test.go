package pathutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		path string
		want string
	}{
		{
			name: "empty input",
			path: "",
			want: "",
		},
		{
			name: "backslashes converted",
			path: "a\\b\\c.txt",
			want: "a/b/c.txt",
		},
		{
			name: "mixed separators and repeated slashes",
			path: "a\\\\b//c",
			want: "a/b/c",
		},
		{
			name: "surrounding whitespace trimmed",
			path: "  src/Main.java  ",
			want: "src/Main.java",
		},
		{
			name: "zero-width characters stripped",
			path: "\uFEFFsrc/\u200BMain.java",
			want: "src/Main.java",
		},
		{
			name: "whitespace only",
			path: "   ",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.path))
		})
	}
}

func TestPathInfo(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		wantFileName string
		wantStem     string
		wantSegments []string
	}{
		{
			name:         "multi-dot mendix file",
			path:         "a/b/C.Foo.mx.json",
			wantFileName: "C.Foo.mx.json",
			wantStem:     "C.Foo.mx",
			wantSegments: []string{"a", "b", "C.Foo.mx.json"},
		},
		{
			name:         "file without extension",
			path:         "folder/Makefile",
			wantFileName: "Makefile",
			wantStem:     "Makefile",
			wantSegments: []string{"folder", "Makefile"},
		},
		{
			name:         "windows separators",
			path:         "MyModule\\pages\\Home.page.xml",
			wantFileName: "Home.page.xml",
			wantStem:     "Home.page",
			wantSegments: []string{"MyModule", "pages", "Home.page.xml"},
		},
		{
			name: "empty input",
			path: "",
		},
		{
			name: "separators only",
			path: "///",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := PathInfo(tt.path)
			assert.Equal(t, tt.wantFileName, info.FileName)
			assert.Equal(t, tt.wantStem, info.Stem)
			assert.Equal(t, tt.wantSegments, info.Segments)
		})
	}
}

func TestToDisplayPath(t *testing.T) {
	assert.Equal(t, ".../Main.java", ToDisplayPath("src/main/java/Main.java"))
	assert.Equal(t, ".../Main.java", ToDisplayPath("Main.java"))
	assert.Equal(t, "", ToDisplayPath(""))
	assert.Equal(t, "", ToDisplayPath("//"))
}

func TestStripMendixExtensions(t *testing.T) {
	assert.Equal(t, "MyModule/Foo", StripMendixExtensions("MyModule/Foo.mx.json"))
	assert.Equal(t, "MyModule/Foo", StripMendixExtensions("MyModule/Foo.MX.JSON"))
	assert.Equal(t, "app/Foo", StripMendixExtensions("app.mendix/Foo"))
	assert.Equal(t, "", StripMendixExtensions(""))
	assert.Equal(t, "plain/file.txt", StripMendixExtensions("plain/file.txt"))
}
