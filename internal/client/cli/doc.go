// Package cli implements the gophnotes command-line client.
//
// Usage:
//
//	client [-a addr] [-c config.json] [-w timeout] [-s session.db] <command>
//
//	register -e EMAIL
//	login    -e EMAIL
//	refresh  [-t REFRESH]
//	logout
//	ping
//	notes list   [-t ACCESS] [-r REFRESH]
//	notes save   [-t ACCESS] [-r REFRESH] [-id ID] -title T -content C [-color N]
//	notes delete [-t ACCESS] [-r REFRESH] -id ID
//
// Passwords are read from the terminal without echo, or from stdin when
// it is not a terminal. login and refresh store the token pair in the
// session file; note commands fall back to it when -t is not given and
// store the rotated pair after an automatic refresh.
package cli
