// Package template provides the Handlebars engine used to render hbs templates.
//
// Templates are parsed with raymond. Helpers and partials are not registered
// globally: each compiled template is bound to the registry.Set of the run
// that created the engine, so concurrent runs in one process cannot see each
// other's registrations.
//
// Example usage:
//
//	set := registry.NewSet()
//	template.RegisterBuiltins(set, cel.NewEvaluator())
//	set.RegisterPartial("nav", "<nav>{{title}}</nav>")
//
//	engine := template.NewEngine(set)
//	result, err := engine.Render("{{> nav}}{{uppercase name}}", map[string]any{
//	    "title": "Home",
//	    "name":  "john",
//	})
//	// result: <nav>Home</nav>JOHN
//
// Built-in helpers:
//   - uppercase - Convert string to uppercase
//   - lowercase - Convert string to lowercase
//   - trim - Trim whitespace from string
//   - default - Return default value if first arg is empty
//   - eq - Equality comparison (numbers compared by value)
//   - ne - Inequality comparison
//   - gt - Greater than (for numbers)
//   - lt - Less than (for numbers)
//   - contains - Check if string contains substring
//   - join - Join array elements with separator
//   - len - Get length of array/string/map
//   - json - Serialize a value as JSON, unescaped
//   - expr - Evaluate a CEL expression with "this" bound to the current context
//
// Example with helpers:
//
//	{{uppercase name}}                        # "JOHN"
//	{{default value "N/A"}}                   # "N/A" if value is empty
//	{{#if (eq status "active")}}...{{/if}}    # Conditional
//	{{#if (gt score 0.8)}}...{{/if}}          # Numeric comparison
//	{{join items ", "}}                       # "a, b, c"
//	{{#if (expr "this.count > 3.0")}}...{{/if}}
package template
