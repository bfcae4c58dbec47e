package dfs

import "strings"

// indexOf returns the first index of val in s, or -1.
func indexOf(s []string, val string) int {
	for i, x := range s {
		if x == val {
			return i
		}
	}

	return -1
}

// reversed returns a reversed copy of s.
func reversed(s []string) []string {
	out := make([]string, len(s))
	for i := range s {
		out[i] = s[len(s)-1-i]
	}

	return out
}

// compare orders two string slices lexicographically; a shorter prefix sorts first.
func compare(a, b []string) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		switch {
		case a[i] < b[i]:
			return -1
		case a[i] > b[i]:
			return 1
		}
	}
	switch {
	case len(a) < len(b):
		return -1
	case len(a) > len(b):
		return 1
	}

	return 0
}

// signature joins a vertex sequence into a dedup key.
func signature(c []string) string {
	return strings.Join(c, "\x00")
}

// minimalRotation is Booth's algorithm: the lexicographically least rotation of s in O(n).
func minimalRotation(s []string) []string {
	n := len(s)
	if n == 0 {
		return nil
	}
	doubled := make([]string, 0, 2*n)
	doubled = append(doubled, s...)
	doubled = append(doubled, s...)
	f := make([]int, 2*n)
	for i := range f {
		f[i] = -1
	}
	k := 0
	for j := 1; j < 2*n; j++ {
		i := f[j-k-1]
		for i != -1 && doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k+i+1] {
				k = j - i - 1
			}
			i = f[i]
		}
		if doubled[j] != doubled[k+i+1] {
			if doubled[j] < doubled[k] {
				k = j
			}
			f[j-k] = -1
		} else {
			f[j-k] = i + 1
		}
	}

	return append([]string(nil), doubled[k:k+n]...)
}
