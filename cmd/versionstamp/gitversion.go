package main

import (
	"os/exec"
	"strings"
)

// fallbackVersion is used when no version is configured and git has no tags.
const fallbackVersion = "0.0.0"

// runGit runs git with args and returns its trimmed standard output.
var runGit = func(args ...string) (string, error) {
	out, err := exec.Command("git", args...).Output()
	return strings.TrimSpace(string(out)), err
}

// gitVersion gets the version from the most recent git tag, or from a tag
// pointing at HEAD, and falls back to 0.0.0.
func gitVersion() string {
	if tag, err := runGit("describe", "--tags", "--abbrev=0"); err == nil && tag != "" {
		return strings.TrimPrefix(tag, "v")
	}

	if out, err := runGit("tag", "--points-at", "HEAD"); err == nil {
		if tags := strings.Fields(out); len(tags) > 0 {
			return strings.TrimPrefix(tags[0], "v")
		}
	}

	return fallbackVersion
}
