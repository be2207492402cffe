/*
Package operation implements the core logic for rewriting class names in the
timetable component files.

	+-------------+
	|  Operation  |
	| (Core Logic)|
	+------+------+
	       |
	+------+------+
	|   Rewrite   |
	| (Transform) |
	+------+------+

🎯 Purpose:
- Orchestrates one rule set run per target file
- Applies the ordered replacement rules to the file blob
- Delegates file I/O to the status package
- Reports outcomes via logging

🔄 Flow:
1. Reads the target file through the status manager
2. Filters the rule set to the rules matching the target path
3. Rewrites the blob with the text package
4. Writes the result back atomically
5. Prints the per-file outcome and the success acknowledgment

📝 Design Philosophy:
The operation package stays focused on transformation orchestration. It never
touches the disk directly and never defines rules of its own; rule content
lives in ruleset and I/O in status. Runs are sequential and synchronous, and
every failure is fatal to the run.
*/
package operation
