// Package cel evaluates CEL expressions for the expr template helper.
//
// Expressions see the current template context as the dynamic variable
// "this". JSON numbers decode as doubles; comparisons across numeric types
// are enabled so "this.count > 3" works without writing 3.0.
//
// Example usage:
//
//	evaluator := cel.NewEvaluator()
//
//	data := map[string]any{"priority": "high", "score": 0.9}
//
//	result, err := evaluator.EvaluateContext(ctx, "this.priority == 'high' && this.score > 0.8", data)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	// result == true
//
// Compiled programs are cached, and the evaluator is safe for concurrent use.
package cel
