package dict

import (
	"strings"
)

// ParseScutil parses the output of `scutil --proxy`:
//
//	<dictionary> {
//	  HTTPEnable : 1
//	  HTTPPort : 8080
//	  HTTPProxy : proxy.example.com
//	  ExceptionsList : <array> {
//	    0 : *.local
//	  }
//	}
//
// Leaf values stay strings; nested dictionaries and arrays become nested
// Dictionary values keyed by their label. It returns nil when the output has
// no top-level dictionary.
func ParseScutil(out string) Dictionary {
	var (
		root  Dictionary
		cur   Dictionary
		stack []Dictionary
	)

	for _, line := range strings.Split(out, "\n") {
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		first, last := fields[0], fields[len(fields)-1]
		switch {
		case last == "}" && len(fields) == 1:
			if len(stack) == 0 {
				return root
			}
			cur = stack[len(stack)-1]
			stack = stack[:len(stack)-1]

		case last == "{":
			child := make(Dictionary)
			if cur == nil {
				root = child
			} else {
				stack = append(stack, cur)
				cur[first] = child
			}
			cur = child

		case cur != nil && len(fields) >= 3 && fields[1] == ":":
			cur[first] = strings.Join(fields[2:], " ")
		}
	}

	return root
}
