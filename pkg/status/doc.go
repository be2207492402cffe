/*
Package status manages file storage for classprefix rewrites.

🎯 Purpose:
- Reads target files as whole UTF-8 blobs
- Writes rewritten content back atomically (temp file + rename)
- Classifies each rewrite as modified or unchanged

🤝 Interfaces:
- FileManager: Handles file operations

📝 Design Philosophy:
All file system access for a rewrite goes through this package, so the
operation layer never touches the disk directly. Reads reject content that is
not valid UTF-8, and writes are atomic so a failed run cannot leave a
truncated component file behind.
*/
package status
