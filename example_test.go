package flowforge_test

import (
	"fmt"
	"log"
	"time"

	"github.com/flowforge/flowforge"
)

// ExampleGenerator_Generate demonstrates compiling a plain-language
// description into a wired module graph.
func ExampleGenerator_Generate() {
	// A fixed clock keeps the blueprint metadata reproducible.
	gen := flowforge.New(flowforge.WithClock(func() time.Time {
		return time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	}))

	result, err := gen.Generate("When an email arrives in Gmail, analyze it with AI and reply")
	if err != nil {
		log.Fatal(err)
	}

	for _, node := range result.Scenario.Nodes {
		fmt.Printf("%d: %s\n", node.ID, node.Kind)
	}
	fmt.Println("connections:", len(result.Scenario.Connections))

	// Output:
	// 1: trigger.gmail-watch
	// 2: processing.ai-agent
	// 3: action.send-email
	// connections: 2
}

// ExampleGenerator_FromTemplate builds a scenario from the template
// catalogue instead of free-form text.
func ExampleGenerator_FromTemplate() {
	gen := flowforge.New()

	result, err := gen.FromTemplate("excel-report")
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println(result.Blueprint.Name)
	fmt.Println(result.Scenario.Nodes[0].Kind)

	// Output:
	// AI_Automation
	// trigger.schedule
}
