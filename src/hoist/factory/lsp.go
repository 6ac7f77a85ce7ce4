package factory

import (
	"math/rand"

	"github.com/tacit-lsp/hoist/src/hoist/entity"
	"go.lsp.dev/protocol"
)

// Range returns a random protocol.Range.
func Range() protocol.Range {
	start := protocol.Position{Line: uint32(rand.Intn(100)), Character: uint32(rand.Intn(100))}
	end := protocol.Position{Line: start.Line + uint32(rand.Intn(100)), Character: uint32(rand.Intn(100))}

	if start.Line == end.Line && start.Character > end.Character {
		end.Character = start.Character + uint32(rand.Intn(100))
	}

	return protocol.Range{
		Start: start,
		End:   end,
	}
}

// Location returns a random protocol.Location under the given URI.
func Location(uri protocol.DocumentURI) protocol.Location {
	return protocol.Location{
		URI:   uri,
		Range: Range(),
	}
}

// Decorations returns a decoration set of the given size.
func Decorations(count int) []entity.DecorationOptions {
	decorations := make([]entity.DecorationOptions, 0, count)
	for i := 0; i < count; i++ {
		decorations = append(decorations, entity.DecorationOptions{
			Range:        Range(),
			RenderText:   "res: Int = 42",
			HoverMessage: "```tacit\nres: Int = 42\n```",
		})
	}
	return decorations
}
