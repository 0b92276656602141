// Package ranges compresses ordered integer lists into range notation
package ranges

import (
	"strconv"
	"strings"
)

// minRun is the shortest run written as a range
const minRun = 3

// Extract returns the range expression of an ordered list of integers.
// Runs of three or more consecutive values are written "start-end",
// everything else is listed individually, i.e., [0 1 2 5 7 8 9] becomes "0-2,5,7-9"
func Extract(nums []int) string {
	parts := make([]string, 0, len(nums))

	for i := 0; i < len(nums); {
		j := i
		for j+1 < len(nums) && nums[j+1] == nums[j]+1 {
			j++
		}

		if j-i+1 >= minRun {
			parts = append(parts, strconv.Itoa(nums[i])+"-"+strconv.Itoa(nums[j]))
		} else {
			for _, n := range nums[i : j+1] {
				parts = append(parts, strconv.Itoa(n))
			}
		}

		i = j + 1
	}

	return strings.Join(parts, ",")
}
