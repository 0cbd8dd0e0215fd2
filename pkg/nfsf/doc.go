// Package nfsf reads and writes the NFSF text format.
//
// # Format
//
// An NFSF file is a sequence of records, one keyword per record. Blank
// lines and lines starting with // are ignored between records.
//
//	// a binary tree
//	TRANSFORM left ROTATION 0.5 TRANSLATION (0,1) SCALE 0.6
//	TRANSFORM right ROTATION -0.5 TRANSLATION (0,1) SCALE 0.6
//
//	GRAPHIC trunk
//	0,0
//	0,1
//
//	FRACTAL tree
//	BRANCH - [0:1] GRAPHIC trunk
//	BRANCH left [0.05:1] FRACTAL tree
//	BRANCH right [0.05:1] FRACTAL tree
//
// A GRAPHIC record is followed by one x,y pair per line until a blank
// line or end of input. A FRACTAL record opens a block: the BRANCH lines
// that follow belong to it until a blank line, another record, or end of
// input. BRANCH lines are only valid inside such a block. The transform
// name "-" means the branch has no transform of its own.
//
// The first FRACTAL declared is the document root.
//
// # Errors
//
// Every rejected line yields a PARSE_ERROR naming the line number and
// text. Duplicate names are reported with their line number and keep
// their DUPLICATE_NAME code.
package nfsf
