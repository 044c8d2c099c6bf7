package engine

// FindToken returns the leftmost maximal run of Base64 alphabet characters
// that is at least minTokenLen long. A longer run further right is ignored.
func FindToken(line string) (string, bool) {
	tok := reToken.FindString(line)
	return tok, tok != ""
}

func findTokenOrError(line string) (string, error) {
	tok, ok := FindToken(line)
	if !ok {
		return "", &Error{Kind: KindNoToken, Msg: "no valid Base64 string found"}
	}
	return tok, nil
}
