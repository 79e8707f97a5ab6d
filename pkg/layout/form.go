package layout

import "github.com/framesketch/framesketch/pkg/wireframe"

// defaultFieldLabels seed form fields when the request does not spell out a
// field count, and cycle as placeholders when it does.
var defaultFieldLabels = []string{"Email Address", "Password", "Confirm Password", "Full Name"}

// formPage centers a narrow column and stacks a title block, input fields,
// and an optional submit button. A single requested form expands to the full
// default field set; multiple requests yield one field each.
func (s *Synthesizer) formPage(requested []wireframe.ComponentType, canvas wireframe.Canvas) []wireframe.Component {
	m := s.m
	var out []wireframe.Component

	formWidth := min(m.FormColumnMax, canvas.Width-2*m.Margin)
	formX := (canvas.Width - formWidth) / 2
	currentY := 2 * m.Margin

	if contains(requested, wireframe.TypeHeader) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeHeader,
			Label:  "Form Title",
			X:      formX,
			Y:      currentY,
			Width:  formWidth,
			Height: m.FormHeaderHeight,
			Properties: wireframe.Properties{
				"title":    wireframe.String("Sign Up"),
				"subtitle": wireframe.String("Create your account"),
			},
		})
		currentY += m.FormHeaderHeight + m.FormHeaderGap
	}

	if n := occurrences(requested, wireframe.TypeForm); n > 0 {
		fields := n
		if fields == 1 {
			fields = len(defaultFieldLabels)
		}
		for i := 0; i < fields; i++ {
			label := defaultFieldLabels[i%len(defaultFieldLabels)]
			out = append(out, wireframe.Component{
				Type:   wireframe.TypeForm,
				Label:  label,
				X:      formX,
				Y:      currentY,
				Width:  formWidth,
				Height: m.FieldHeight,
				Properties: wireframe.Properties{
					"field_type":  wireframe.String("input"),
					"placeholder": wireframe.String(label),
				},
			})
			currentY += m.FieldHeight + m.FieldGap
		}
	}

	if contains(requested, wireframe.TypeButton) {
		out = append(out, wireframe.Component{
			Type:   wireframe.TypeButton,
			Label:  "Submit Button",
			X:      formX,
			Y:      currentY + m.FieldGap,
			Width:  formWidth,
			Height: m.FieldHeight,
			Properties: wireframe.Properties{
				"text":    wireframe.String("Create Account"),
				"primary": wireframe.Bool(true),
			},
		})
	}

	return out
}
