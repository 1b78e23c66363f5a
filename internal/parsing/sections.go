package parsing

// FindSectionStart returns the index of the first line whose lower-cased text contains
// any of the keywords, or -1 when no line does.
func FindSectionStart(lines []string, keywords []string) int {
	for i, line := range lines {
		if containsAny(line, keywords) {
			return i
		}
	}
	return -1
}

// LocateSection returns the index of the line that starts the section named by keywords.
// A heading-shaped line ("Experience", "Work Experience", "Skills: ...") is preferred over
// prose that happens to contain a keyword ("Experienced engineer ..."); when no line has a
// heading shape the first containing line is used. Returns -1 when the section is absent.
func LocateSection(lines []string, keywords []string) int {
	for i, line := range lines {
		if isHeadingFor(line, keywords) {
			return i
		}
	}
	return FindSectionStart(lines, keywords)
}

// endsSection reports whether line is a boundary header for some section other than the
// one described by own.
func endsSection(line string, own []string) bool {
	return IsSectionHeader(line) && !containsAny(line, own)
}
