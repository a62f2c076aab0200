// Package utils is a collection of small, stateless helpers built around a
// string template renderer.
//
// # Template Rendering
//
// Placeholders name a key in the data context, either a non-negative index
// or a dotted path:
//
//	out, err := utils.Render("Hello {user.name}!", map[string]any{
//	    "user": map[string]any{"name": "Alice"},
//	})
//	// out: "Hello Alice!"
//
// Two placeholder forms are supported:
//
//	{key}    substituted as-is
//	{{key}}  substituted through the escaper (HTML-escaped by default)
//
// Double-brace placeholders are resolved first; single-brace placeholders are
// then resolved in the result.
//
// # Missing Values
//
// A key that resolves to nothing fails with *MissingValueError:
//
//	_, err := utils.Render("{missing}", nil)
//	if key, ok := utils.MissingKey(err); ok {
//	    // key == "missing"
//	}
//
// With WithIgnoreMissing(true) the placeholder is left in the output instead.
//
// # Configuration
//
// Customize rendering with functional options:
//
//	r, _ := utils.New(
//	    utils.WithIgnoreMissing(true),
//	    utils.WithFoldCase(true),
//	    utils.WithTransform(func(d utils.TransformData) (any, bool) {
//	        if !d.Found {
//	            return "n/a", true
//	        }
//	        return d.Value, true
//	    }),
//	    utils.WithLogger(logger),
//	)
//	out, err := r.Render("{{title}}: {body}", data)
//
// # Helpers
//
// Besides rendering, the package provides color conversion (HexToRGB,
// RGBToHex, IsRGBLight), generic slice and map helpers, PBKDF2 password
// hashing with a per-process salt, string helpers (Indent, HashCyrb53,
// FormatString, ...) and a colored console formatter (NewFancyFormatter).
package utils
