package merge

import (
	"strings"

	"github.com/erraggy/openapi-merge/mergeconfig"
	"github.com/erraggy/openapi-merge/oasmodel"
)

// JoinDescription implements the Description Joiner (§4.7): every input
// whose description directive has Append set contributes its own
// info.description (optionally preceded by a markdown title heading) to an
// ordered list; once that list is non-empty it *replaces*
// state.Output.Info.Description outright rather than appending onto
// whatever text is already there.
//
// Replacing, instead of appending onto a value Merge already seeded from
// input 0's own Info, matters when input 0 itself sets description.append:
// seeding copies input 0's raw description into state.Output.Info.Description
// before this is ever called for input 0, so appending onto that seed would
// duplicate input 0's text. Collecting every contribution first and
// assigning the join once avoids the duplication regardless of which input
// (including the first) opts in.
func JoinDescription(state *State, doc *oasmodel.Document, in mergeconfig.InputConfig) {
	if in.Description == nil || !in.Description.Append {
		return
	}
	if doc.Info == nil || doc.Info.Description == "" {
		return
	}

	description := strings.TrimRight(doc.Info.Description, " \t\r\n")
	if in.Description.Title != "" {
		description = "# " + in.Description.Title + "\n\n" + description
	}
	state.descriptionParts = append(state.descriptionParts, description)

	if state.Output.Info == nil {
		state.Output.Info = &oasmodel.Info{}
	}
	state.Output.Info.Description = strings.Join(state.descriptionParts, "\n\n")
}
