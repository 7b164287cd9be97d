package sscan

// scanChars reads exactly width bytes (one when width is zero) from src,
// whitespace included. It reports false if src is too short.
func scanChars(src string, width int) (string, bool) {
	if width <= 0 {
		width = 1
	}
	if len(src) < width {
		return "", false
	}
	return src[:width], true
}

// scanWord reads the leading run of non-whitespace bytes of src. The caller
// bounds src to the verb's width. It reports false for an empty run.
func scanWord(src string) (string, bool) {
	i := 0
	for i < len(src) && !isSpace(src[i]) {
		i++
	}
	if i == 0 {
		return "", false
	}
	return src[:i], true
}
