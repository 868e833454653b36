// Package pilot assembles project context into prompt payloads for AI
// assistants.
//
// pilot scans a project under gitignore semantics, measures its token
// cost, and produces one of several prompt documents depending on
// whether the project fits a configured context budget. Each subpackage
// can be used independently:
//
//   - ignore: gitignore-style path filtering
//   - scan: project walking, binary detection, and tree rendering
//   - tokens: token counting (tiktoken-backed) and budget analysis
//   - compose: multi-phase prompt document composition
//   - template: prompt template rendering with {{variable}} syntax
//   - truncate: token-aware text truncation strategies
//   - parser: extract file requests and code blocks from assistant replies
//   - engine: the orchestrator tying the pipeline together
//
// # Quick Start
//
// Build a prompt for a task:
//
//	import "github.com/contextpilot/pilot/engine"
//	eng, _ := engine.New(engine.Options{Root: "."})
//	result, _ := eng.Assist("Refactor the auth logic", engine.AssistOptions{})
//	fmt.Println(result.Text)
//
// Deliver explicit files during a guided-discovery session:
//
//	result, _ := eng.DeliverFiles([]string{"src/main.py", "src/utils.py"})
//
// # Design Philosophy
//
//   - Each package usable independently
//   - One invocation, one result: no hidden cross-run state
//   - Soft failures (bad ignore pattern, unreadable file) degrade and
//     are reported as warnings; hard failures abort before any output
//     is written
package pilot
