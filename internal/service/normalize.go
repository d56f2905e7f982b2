package service

import "strings"

// NormalizeObjectKey canonicalizes a stored file reference into the bare
// object key the signing API expects. Historically documents were stored as
// full public URLs; newer rows hold bare keys. Both forms must resolve to
// the same key, and normalization never fails.
func NormalizeObjectKey(bucket, ref string) string {
	if ref == "" {
		return ref
	}

	if strings.HasPrefix(ref, "http") {
		pubMarker := "/object/public/" + bucket + "/"
		if idx := strings.Index(ref, pubMarker); idx != -1 {
			return ref[idx+len(pubMarker):]
		}
		anyMarker := "/" + bucket + "/"
		if idx := strings.Index(ref, anyMarker); idx != -1 {
			return ref[idx+len(anyMarker):]
		}
	}

	return strings.TrimLeft(ref, "/")
}
