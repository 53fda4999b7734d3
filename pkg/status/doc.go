/*
Package status renders plans and validation reports for the console.

	      +-------------+
	      |   Status    |
	      | (Rendering) |
	      +------+------+
	             |
	+-----------+-----------+
	|                       |
	+-----+-----+     +-----+-----+
	| Formatter |     |  Console  |
	|  (plain)  |     |  (color)  |
	+-----------+     +-----------+

🎯 Purpose:
- Formats proposals as old name, state and a character diff of the new name
- Formats validated items and state summaries
- Keeps presentation out of the operation package

🎨 Colors follow item severity: ok is green, skipped is grey, warning is
yellow and error is red. Setting color.NoColor gives plain output, and name
diffs then use [-removed-] and {+inserted+} markers.

🔍 Example:

	for _, p := range proposals {
		fmt.Println(status.FormatProposal(p))
	}
	fmt.Println(status.NewDefaultFormatter().FormatSummary(report))
*/
package status
