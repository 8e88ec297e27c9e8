package services

import (
	"sort"
	"strings"

	"fulfillment/internal/core/domain/model/picking"
)

// OrderTasksForTraversal sorts tasks into the sequence an operator walks
// the floor in: by storage location, then by container code with numeric
// runs compared as numbers (BOX-2 before BOX-10), then by product for a
// stable tie-break. Sorts in place and returns the same slice.
func OrderTasksForTraversal(tasks []*picking.Task) []*picking.Task {
	sort.SliceStable(tasks, func(i, j int) bool {
		a, b := tasks[i], tasks[j]
		if a.LocationCode() != b.LocationCode() {
			return naturalLess(a.LocationCode(), b.LocationCode())
		}
		if a.ContainerCode() != b.ContainerCode() {
			return naturalLess(a.ContainerCode(), b.ContainerCode())
		}
		return a.SKU() < b.SKU()
	})
	return tasks
}

// naturalLess compares two codes segment by segment, treating runs of
// digits as numbers. Case-insensitive on the letter segments.
func naturalLess(a, b string) bool {
	a, b = strings.ToUpper(a), strings.ToUpper(b)
	for len(a) > 0 && len(b) > 0 {
		if isDigit(a[0]) && isDigit(b[0]) {
			aNum, aRest := splitLeadingNumber(a)
			bNum, bRest := splitLeadingNumber(b)
			if aNum != bNum {
				return aNum < bNum
			}
			a, b = aRest, bRest
			continue
		}
		if a[0] != b[0] {
			return a[0] < b[0]
		}
		a, b = a[1:], b[1:]
	}
	return len(a) < len(b)
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// splitLeadingNumber returns the leading digit run as a number plus the
// rest of the string. Codes are short, so overflow is not a concern.
func splitLeadingNumber(s string) (int, string) {
	i := 0
	n := 0
	for i < len(s) && isDigit(s[i]) {
		n = n*10 + int(s[i]-'0')
		i++
	}
	return n, s[i:]
}
