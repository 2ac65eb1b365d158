package contenttype

import (
	"http-enum/application/util/rule"
	"sort"
)

var extensions = map[string]ContentType{
	"txt":  Text,
	"html": HTML,
	"htm":  HTML,
	"xml":  XML,
	"css":  CSS,
	"js":   JavaScript,
	"csv":  CSV,
	"md":   Markdown,
	"json": JSON,

	"pdf": PDF,
	"zip": ZIP,

	"png":  PNG,
	"jpg":  JPEG,
	"jpeg": JPEG,
	"gif":  GIF,
	"webp": WebP,
	"svg":  SVG,
	"ico":  Icon,
	"heic": HEIC,

	"mp3":  MP3,
	"wav":  WAV,
	"mp4":  MP4,
	"mpeg": MPEG,
	"mpg":  MPEG,
	"webm": WebM,

	"woff":  WOFF,
	"woff2": WOFF2,
	"ttf":   TTF,
	"otf":   OTF,
}

// FromExtension looks up a file extension given without the leading dot.
// The lookup is case-insensitive.
func FromExtension(ext string) (ContentType, bool) {
	ct, ok := extensions[rule.ToLowerASCII(ext)]
	return ct, ok
}

// Extensions returns the known file extensions of ct, sorted.
func Extensions(ct ContentType) []string {
	var out []string
	for ext, v := range extensions {
		if v == ct {
			out = append(out, ext)
		}
	}
	sort.Strings(out)
	return out
}
