package services

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
)

const TeamPrompt = "Please enter your team ID:"

// PromptInput asks for the team id on a terminal.
type PromptInput struct {
	In  io.Reader
	Out io.Writer
}

func (p PromptInput) TeamID(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := fmt.Fprint(p.Out, TeamPrompt+" "); err != nil {
		return "", err
	}
	line, err := bufio.NewReader(p.In).ReadString('\n')
	if err != nil && !(err == io.EOF && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}
