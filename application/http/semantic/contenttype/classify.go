package contenttype

import "strings"

// IsTextBased reports whether payloads of ct are human-readable text.
func (ct ContentType) IsTextBased() bool {
	if !ct.Valid() {
		return false
	}
	if strings.HasPrefix(string(ct), "text/") {
		return true
	}

	switch ct {
	case JSON, JavaScript, XML, CSV, Markdown:
		return true
	}
	return false
}

// IsJSON covers application/json and every structured "+json" suffix type.
//
// Reference: https://datatracker.ietf.org/doc/html/rfc6839#section-3.1
func (ct ContentType) IsJSON() bool {
	return ct.Valid() && (ct == JSON || strings.HasSuffix(string(ct), "+json"))
}

func (ct ContentType) IsImage() bool { return ct.hasTopLevel("image") }
func (ct ContentType) IsAudio() bool { return ct.hasTopLevel("audio") }
func (ct ContentType) IsVideo() bool { return ct.hasTopLevel("video") }
func (ct ContentType) IsFont() bool  { return ct.hasTopLevel("font") }

func (ct ContentType) IsMedia() bool {
	return ct.IsImage() || ct.IsAudio() || ct.IsVideo()
}

func (ct ContentType) IsForm() bool {
	switch ct {
	case FormURLEncoded, FormData:
		return true
	}
	return false
}

func (ct ContentType) IsBinary() bool {
	if ct.IsMedia() || ct.IsFont() {
		return true
	}

	switch ct {
	case PDF, ZIP, MsgPack, Protobuf, OctetStream:
		return true
	}
	return false
}

func (ct ContentType) hasTopLevel(typ string) bool {
	return ct.Valid() && strings.HasPrefix(string(ct), typ+"/")
}

// All returns every content type in declaration order.
func All() []ContentType { return members.Data() }

// Grouping queries. Each returns a fresh slice in declaration order.

func TextBased() []ContentType { return members.Filter(ContentType.IsTextBased) }
func JSONTypes() []ContentType { return members.Filter(ContentType.IsJSON) }
func Image() []ContentType     { return members.Filter(ContentType.IsImage) }
func Audio() []ContentType     { return members.Filter(ContentType.IsAudio) }
func Video() []ContentType     { return members.Filter(ContentType.IsVideo) }
func Media() []ContentType     { return members.Filter(ContentType.IsMedia) }
func Font() []ContentType      { return members.Filter(ContentType.IsFont) }
func Form() []ContentType      { return members.Filter(ContentType.IsForm) }
func Binary() []ContentType    { return members.Filter(ContentType.IsBinary) }
