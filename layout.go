package spriterator

// entry is one image in the layout plan: its trimmed size going in,
// its sheet and pixel offset once packed.
type entry struct {
	index  int // position in the sorted source list
	width  int
	height int

	sheet int
	row   int
	x     int
	y     int
}

// row is a horizontal shelf of entries on one sheet.
// Entries sit flush left with no gap; the row is as tall as its
// tallest member.
type row struct {
	entries []*entry
	width   int
	height  int
}

// sheet is an ordered stack of rows, flush top with no gap.
// Width is the widest row, height the sum of row heights, so the
// canvas allocated for it fits exactly.
type sheet struct {
	rows   []*row
	width  int
	height int
}

// pack assigns each entry, in input order, to a sheet and an offset
// within it. Entries fill the current row left to right; a row that
// would grow past maxWidth is closed and a new one started beneath it;
// a sheet that would grow past maxHeight is closed and a new one
// started. Input order is never re-sorted, so identical input always
// produces the identical plan.
//
// Two exceptions keep the packer total: a single entry wider than
// maxWidth gets a row to itself (wider than maxWidth), and a single
// row taller than maxHeight gets a sheet to itself.
func pack(entries []*entry, maxWidth, maxHeight int) ([]*sheet, error) {
	if maxWidth <= 0 || maxHeight <= 0 {
		return nil, ErrInvalidConfig
	}

	sheets := []*sheet{}
	currentSheet := &sheet{rows: []*row{}}
	currentRow := &row{entries: []*entry{}}

	closeRow := func() {
		if len(currentRow.entries) == 0 {
			return
		}

		if len(currentSheet.rows) > 0 && currentSheet.height+currentRow.height > maxHeight {
			sheets = append(sheets, currentSheet)
			currentSheet = &sheet{rows: []*row{}}
		}

		for _, e := range currentRow.entries {
			e.sheet = len(sheets)
			e.row = len(currentSheet.rows)
			e.y = currentSheet.height
		}

		currentSheet.rows = append(currentSheet.rows, currentRow)
		currentSheet.height += currentRow.height
		if currentRow.width > currentSheet.width {
			currentSheet.width = currentRow.width
		}

		currentRow = &row{entries: []*entry{}}
	}

	for _, e := range entries {
		if len(currentRow.entries) > 0 && currentRow.width+e.width > maxWidth {
			closeRow()
		}

		e.x = currentRow.width
		currentRow.entries = append(currentRow.entries, e)
		currentRow.width += e.width
		if e.height > currentRow.height {
			currentRow.height = e.height
		}
	}

	closeRow()
	if len(currentSheet.rows) > 0 {
		sheets = append(sheets, currentSheet)
	}

	return sheets, nil
}
