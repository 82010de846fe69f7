package versions

// Line-oriented diff over two string slices, longest-common-subsequence
// based. Unchanged lines are unmarked, removals from A are interleaved at
// their original position before the insertions from B that replace them.

type diffOp int

const (
	opEqual diffOp = iota
	opRemove
	opAdd
)

type diffLine struct {
	op   diffOp
	text string
}

func diffLines(a []string, b []string) []diffLine {
	// table[i][j] = LCS length of a[i:] and b[j:]
	table := make([][]int, len(a)+1)
	for i := range table {
		table[i] = make([]int, len(b)+1)
	}
	for i := len(a) - 1; i >= 0; i-- {
		for j := len(b) - 1; j >= 0; j-- {
			if a[i] == b[j] {
				table[i][j] = table[i+1][j+1] + 1
			} else if table[i+1][j] >= table[i][j+1] {
				table[i][j] = table[i+1][j]
			} else {
				table[i][j] = table[i][j+1]
			}
		}
	}

	var out []diffLine
	i, j := 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] == b[j]:
			out = append(out, diffLine{op: opEqual, text: a[i]})
			i++
			j++
		case table[i+1][j] >= table[i][j+1]:
			out = append(out, diffLine{op: opRemove, text: a[i]})
			i++
		default:
			out = append(out, diffLine{op: opAdd, text: b[j]})
			j++
		}
	}
	for ; i < len(a); i++ {
		out = append(out, diffLine{op: opRemove, text: a[i]})
	}
	for ; j < len(b); j++ {
		out = append(out, diffLine{op: opAdd, text: b[j]})
	}

	return out
}
