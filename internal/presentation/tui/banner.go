package tui

import (
	"fmt"
	"io"

	"github.com/aretw0/memtree-bench/pkg/domain"
	"github.com/muesli/termenv"
)

var stageTitles = map[domain.Stage]string{
	domain.StageProvision: "Provisioning datasets...",
	domain.StageTrain:     "Training...",
	domain.StageEvaluate:  "Testing...",
}

var stageColors = map[domain.Stage]string{
	domain.StageProvision: "#818cf8",
	domain.StageTrain:     "#c084fc",
	domain.StageEvaluate:  "#f472b6",
}

// StageBanner returns the "## <stage>" heading printed when a stage starts.
// Color is applied only when the terminal supports it.
func StageBanner(stage domain.Stage) string {
	title, ok := stageTitles[stage]
	if !ok {
		title = string(stage) + "..."
	}
	p := termenv.ColorProfile()
	return termenv.String("## " + title).Foreground(p.Color(stageColors[stage])).Bold().String()
}

// PrintHeader writes the opening line of a run.
func PrintHeader(w io.Writer, exp domain.Experiment) {
	p := termenv.ColorProfile()
	fmt.Fprintln(w, termenv.String(fmt.Sprintf("perform experiments on %s (multilabel)", exp.Name)).Foreground(p.Color("#a78bfa")))
}
