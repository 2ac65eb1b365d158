package contenttype

import (
	"encoding/json"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	for _, ct := range All() {
		got, ok := Parse(string(ct))
		require.True(t, ok, ct)
		assert.Equal(t, ct, got)
	}

	invalid := []string{"text", "", "application/jsons", "invalid/type", "TEXT/XML", "APPLICATION/JSON"}
	for _, v := range invalid {
		_, ok := Parse(v)
		assert.False(t, ok, "%q", v)
	}
}

func TestMustParse(t *testing.T) {
	assert.Equal(t, PNG, MustParse("image/png"))

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		assert.True(t, errors.Is(err, ErrUnknown))
	}()
	MustParse("INVALID")
}

func TestAllUnique(t *testing.T) {
	all := All()
	assert.Len(t, all, 40)

	seen := make(map[ContentType]struct{})
	for _, ct := range all {
		_, dup := seen[ct]
		assert.False(t, dup, ct)
		seen[ct] = struct{}{}
	}
}

func TestFromHeader(t *testing.T) {
	testcases := []struct {
		desc     string
		input    string
		expected ContentType
		ok       bool
	}{
		{
			desc:     "plain media type",
			input:    "application/json",
			expected: JSON,
			ok:       true,
		},
		{
			desc:     "with charset parameter",
			input:    "application/json; charset=utf-8",
			expected: JSON,
			ok:       true,
		},
		{
			desc:     "multiple parameters",
			input:    "multipart/form-data; boundary=xyz; charset=utf-8",
			expected: FormData,
			ok:       true,
		},
		{
			desc:     "surrounding whitespace",
			input:    " \ttext/html \t; charset=utf-8",
			expected: HTML,
			ok:       true,
		},
		{
			desc:     "mixed case",
			input:    "Application/Problem+JSON",
			expected: ProblemJSON,
			ok:       true,
		},
		{
			desc:  "empty",
			input: "",
		},
		{
			desc:  "only parameters",
			input: "; charset=utf-8",
		},
		{
			desc:  "unknown media type",
			input: "application/x-unknown",
		},
		{
			desc:  "partial media type",
			input: "application/js",
		},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			ct, ok := FromHeader(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, ct)
		})
	}
}

func TestFromExtension(t *testing.T) {
	testcases := []struct {
		ext      string
		expected ContentType
	}{
		{"txt", Text},
		{"html", HTML},
		{"htm", HTML},
		{"xml", XML},
		{"css", CSS},
		{"js", JavaScript},
		{"csv", CSV},
		{"md", Markdown},
		{"json", JSON},
		{"pdf", PDF},
		{"zip", ZIP},
		{"png", PNG},
		{"jpg", JPEG},
		{"jpeg", JPEG},
		{"gif", GIF},
		{"webp", WebP},
		{"svg", SVG},
		{"ico", Icon},
		{"heic", HEIC},
		{"mp3", MP3},
		{"wav", WAV},
		{"mp4", MP4},
		{"mpeg", MPEG},
		{"mpg", MPEG},
		{"webm", WebM},
		{"woff", WOFF},
		{"woff2", WOFF2},
		{"ttf", TTF},
		{"otf", OTF},
	}

	for _, tc := range testcases {
		t.Run(tc.ext, func(t *testing.T) {
			lower, ok := FromExtension(tc.ext)
			require.True(t, ok)
			assert.Equal(t, tc.expected, lower)

			upper, ok := FromExtension(upper(tc.ext))
			require.True(t, ok)
			assert.Equal(t, tc.expected, upper)
		})
	}

	for _, ext := range []string{"", ".png", "exe", "tar.gz", "p ng"} {
		_, ok := FromExtension(ext)
		assert.False(t, ok, "%q", ext)
	}
}

func TestExtensions(t *testing.T) {
	assert.Equal(t, []string{"jpeg", "jpg"}, Extensions(JPEG))
	assert.Equal(t, []string{"htm", "html"}, Extensions(HTML))
	assert.Equal(t, []string{"json"}, Extensions(JSON))
	assert.Empty(t, Extensions(Atom))

	for ext, ct := range extensions {
		assert.True(t, ct.Valid(), ext)
		assert.Contains(t, Extensions(ct), ext)
	}
}

func TestGroupsMatchPredicates(t *testing.T) {
	testcases := []struct {
		desc      string
		group     func() []ContentType
		predicate func(ContentType) bool
	}{
		{"text based", TextBased, ContentType.IsTextBased},
		{"json", JSONTypes, ContentType.IsJSON},
		{"image", Image, ContentType.IsImage},
		{"audio", Audio, ContentType.IsAudio},
		{"video", Video, ContentType.IsVideo},
		{"media", Media, ContentType.IsMedia},
		{"font", Font, ContentType.IsFont},
		{"form", Form, ContentType.IsForm},
		{"binary", Binary, ContentType.IsBinary},
	}

	for _, tc := range testcases {
		t.Run(tc.desc, func(t *testing.T) {
			group := tc.group()
			require.NotEmpty(t, group)

			for _, ct := range group {
				assert.True(t, tc.predicate(ct), ct)
			}
			for _, ct := range All() {
				assert.Equal(t, tc.predicate(ct), contains(group, ct), ct)
			}
		})
	}
}

func TestGroups(t *testing.T) {
	assert.Equal(t,
		[]ContentType{Text, HTML, XML, CSS, JavaScript, CSV, Markdown, JSON, EventStream},
		TextBased(),
	)
	assert.Equal(t,
		[]ContentType{JSON, JSONAPI, JSONSchema, HALJSON, ProblemJSON, CloudEventsJSON},
		JSONTypes(),
	)
	assert.Equal(t, []ContentType{PNG, JPEG, GIF, WebP, SVG, Icon, HEIC}, Image())
	assert.Equal(t, []ContentType{MP3, WAV}, Audio())
	assert.Equal(t, []ContentType{MP4, MPEG, WebM}, Video())
	assert.Equal(t, []ContentType{WOFF, WOFF2, TTF, OTF}, Font())
	assert.Equal(t, []ContentType{FormURLEncoded, FormData}, Form())
	assert.Len(t, Media(), 12)
	assert.Len(t, Binary(), 21)
}

func TestGroupIsCopy(t *testing.T) {
	form := Form()
	form[0] = PDF

	assert.Equal(t, []ContentType{FormURLEncoded, FormData}, Form())
}

func TestPredicatesOnUnknown(t *testing.T) {
	for _, ct := range []ContentType{"", "text/unknown", "image/bmp", "application/foo+json", "font/eot"} {
		assert.False(t, ct.Valid(), ct)
		assert.False(t, ct.IsTextBased(), ct)
		assert.False(t, ct.IsJSON(), ct)
		assert.False(t, ct.IsImage(), ct)
		assert.False(t, ct.IsFont(), ct)
		assert.False(t, ct.IsMedia(), ct)
		assert.False(t, ct.IsBinary(), ct)
		assert.False(t, ct.IsForm(), ct)
	}
}

func TestPredicates(t *testing.T) {
	assert.True(t, SVG.IsImage())
	assert.True(t, SVG.IsBinary())
	assert.False(t, SVG.IsTextBased())

	assert.True(t, EventStream.IsTextBased())
	assert.False(t, EventStream.IsBinary())

	assert.False(t, XHTML.IsTextBased())
	assert.False(t, Atom.IsJSON())
	assert.True(t, OctetStream.IsBinary())
	assert.False(t, FormData.IsBinary())
}

type document struct {
	Accept []ContentType `json:"accept" yaml:"accept"`
	Prefer ContentType   `json:"prefer" yaml:"prefer"`
}

func TestTextEncoding(t *testing.T) {
	t.Run("json", func(t *testing.T) {
		var doc document
		err := json.Unmarshal([]byte(`{"accept":["application/json","text/html"],"prefer":"image/png"}`), &doc)
		require.NoError(t, err)
		assert.Equal(t, document{Accept: []ContentType{JSON, HTML}, Prefer: PNG}, doc)

		b, err := json.Marshal(doc)
		require.NoError(t, err)
		assert.JSONEq(t, `{"accept":["application/json","text/html"],"prefer":"image/png"}`, string(b))
	})

	t.Run("yaml", func(t *testing.T) {
		var doc document
		err := yaml.Unmarshal([]byte("accept: [text/csv]\nprefer: font/woff2\n"), &doc)
		require.NoError(t, err)
		assert.Equal(t, document{Accept: []ContentType{CSV}, Prefer: WOFF2}, doc)
	})

	t.Run("unknown value", func(t *testing.T) {
		var doc document
		err := json.Unmarshal([]byte(`{"prefer":"text/unknown"}`), &doc)
		assert.True(t, errors.Is(err, ErrUnknown))

		err = yaml.Unmarshal([]byte("prefer: TEXT/HTML\n"), &doc)
		assert.True(t, errors.Is(err, ErrUnknown))

		_, err = json.Marshal(document{Prefer: "bogus"})
		assert.Error(t, err)
	})
}

func contains(group []ContentType, ct ContentType) bool {
	for _, v := range group {
		if v == ct {
			return true
		}
	}
	return false
}

func upper(s string) string {
	b := []byte(s)
	for i, c := range b {
		if 'a' <= c && c <= 'z' {
			b[i] = c - ('a' - 'A')
		}
	}
	return string(b)
}
