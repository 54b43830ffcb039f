package cli

import gotoken "go/token"

func scannerPosition(filename string, line int) gotoken.Position {
	return gotoken.Position{Filename: filename, Line: line}
}
