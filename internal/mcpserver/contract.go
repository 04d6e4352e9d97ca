package mcpserver

// SearchContract describes the matching rules of the search_file tool so
// that LLM clients can phrase queries correctly.
const SearchContract = `# minigrep search contract

search_file reports every line of one file that contains the query.

## Rules

1. **Plain substring.** The query is not a regular expression; every
   character matches itself.
2. **One file.** ` + "`path`" + ` names a single file below the server root.
   Absolute paths and paths leaving the root are rejected.
3. **Lines.** Lines end at ` + "`\\n`" + ` or ` + "`\\r\\n`" + `; the terminator is not part of the
   line and is not returned.
4. **Case.** Matching is case sensitive unless ` + "`case_insensitive`" + ` is true.
   Case-insensitive matching lower-cases both the query and each line, but the
   original line is returned.
5. **Empty query** matches every line.
6. **Output** is the matching lines in file order, one per line, or
   ` + "`no matches`" + ` when nothing matched.
7. **Encoding.** Files must be UTF-8; other files are reported as errors.
`
