package skill

// vocabulary is the canonical list of recognised skill labels. Order is
// significant: extraction reports skills in this order.
var vocabulary = [...]string{
	"Python", "Machine Learning", "Data Analysis", "Frontend Development",
	"JavaScript", "React", "Backend Development", "Node.js", "MongoDB",
	"UI/UX Design", "Figma", "Adobe XD", "Deep Learning", "TensorFlow",
	"CSS", "Express", "Prototyping", "Java", "C++", "HTML", "SQL", "AI",
	"Django", "Flask",
}

var known = func() map[string]struct{} {
	m := make(map[string]struct{}, len(vocabulary))
	for _, s := range vocabulary {
		m[s] = struct{}{}
	}
	return m
}()

// Vocabulary returns a copy of the skill vocabulary.
func Vocabulary() []string {
	out := make([]string, len(vocabulary))
	copy(out, vocabulary[:])
	return out
}

// IsKnown reports whether label is exactly (case-sensitively) a vocabulary entry.
func IsKnown(label string) bool {
	_, ok := known[label]
	return ok
}
