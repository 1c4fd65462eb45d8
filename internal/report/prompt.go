package report

import (
	"fmt"
	"strings"

	"github.com/UtahNetScout/GoalieScout/internal/model"
)

// BuildPrompt renders the scouting prompt for one player: identity, the
// base movement metrics, the role-specific block, and the analysis
// instructions. The scoring provider receives exactly this text for both
// the narrative and the score call.
func BuildPrompt(name, position string, role model.Role, m model.MetricSet) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Analyze the following hockey player's movement performance:\n\n")
	fmt.Fprintf(&b, "Player: %s\n", name)
	fmt.Fprintf(&b, "Position: %s\n\n", position)

	b.WriteString("Movement Metrics:\n")
	fmt.Fprintf(&b, "- Total Distance Traveled: %.2f units\n", m[model.MetricTotalDistance])
	fmt.Fprintf(&b, "- Average Speed: %.2f units/sec\n", m[model.MetricAverageSpeed])
	fmt.Fprintf(&b, "- Maximum Speed: %.2f units/sec\n", m[model.MetricMaxSpeed])
	fmt.Fprintf(&b, "- Direction Changes: %.0f\n", m[model.MetricDirectionChanges])
	fmt.Fprintf(&b, "- On-Puck Carrying Distance: %.2f units\n", m[model.MetricOnPuckDistance])
	fmt.Fprintf(&b, "- Space Creation: %.2f units\n", m[model.MetricSpaceCreation])
	fmt.Fprintf(&b, "- Events: %.0f\n", m[model.MetricEventsCount])

	switch role {
	case model.RoleGoalie:
		b.WriteString("\nGoalie-Specific Metrics:\n")
		fmt.Fprintf(&b, "- Crease Movement: %.2f\n", m[model.MetricCreaseMovement])
		fmt.Fprintf(&b, "- Lateral Movement: %.2f\n", m[model.MetricLateralMovement])
	case model.RoleDefender:
		b.WriteString("\nDefenseman-Specific Metrics:\n")
		fmt.Fprintf(&b, "- Gap Control: %.2f\n", m[model.MetricGapControl])
	case model.RoleForward:
		b.WriteString("\nForward-Specific Metrics:\n")
		fmt.Fprintf(&b, "- High-Danger Positioning: %.2f\n", m[model.MetricHighDanger])
	}

	b.WriteString(`
Provide a brief scouting report (3-5 sentences) focusing on:
1. Movement efficiency and skating ability
2. Positioning and spatial awareness
3. Key strengths and areas for improvement
4. Overall assessment of their movement contribution to team play
`)

	return b.String()
}
