/*
Package log provides global output control across the whole application. Logging comes
in four levels: Silent, Normal, Verbose and Debug with each level more detailed than
the previous. Levels are inclusive, so, e.g., if VerboseLevel is set that implies
NormalLevel logging.

Each message class carries a fixed marker so a scan transcript can be skimmed:
"[*]" for status, "[+]" for findings, "[!]" for warnings, "[-]" for failures and
"[D]" for wire-level debug detail.

The Print and Printf interfaces are similar to the fmt versions with a few subtle
differences due to the need to prefix lines. The main difference is that if the
resulting string contains multiple lines they are all printed with the marker for the
message class. The second difference is that a trailing newline is not needed and
excess ones are trimmed.

Specialist output functions external to this package should still use log.Out() to
access the current io.Writer for the purposes of capturing output for tests.
*/
package log
