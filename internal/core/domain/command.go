package domain

import (
	"bufio"
	"strings"

	"go.trai.ch/zerr"
)

// Command is a single UI command registered for an entity type.
type Command struct {
	Name  string
	Title string
	Icon  string
}

// cacheLineTokens is the minimum number of $-delimited fields a cache line
// must carry. Only fields 0 (name), 1 (title) and 4 (icon) are consumed;
// fields 2-3 are reserved.
const cacheLineTokens = 5

// ParseCachedCommands parses the raw text content of a command cache into an
// ordered list of commands. The output order equals the line order of the
// input, which callers rely on for menu ordering.
//
// A single line with fewer than the required tokens fails the whole parse: a
// partially parsed cache could silently omit valid commands.
func ParseCachedCommands(content string) ([]Command, error) {
	var commands []Command

	scanner := bufio.NewScanner(strings.NewReader(content))
	for scanner.Scan() {
		line := scanner.Text()
		tokens := strings.Split(line, "$")

		if len(tokens) < cacheLineTokens {
			return nil, zerr.With(
				zerr.With(ErrMalformedCache, "line", line),
				"cache_content", content,
			)
		}

		commands = append(commands, Command{
			Name:  tokens[0],
			Title: tokens[1],
			Icon:  tokens[4],
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, zerr.Wrap(err, "failed to scan cache content")
	}

	return commands, nil
}
