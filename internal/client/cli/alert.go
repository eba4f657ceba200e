package cli

// alert shows a blocking message. On a terminal "blocking" just means it is
// printed before the next prompt.
func (a *App) alert(title, message string) {
	a.printf("[%s] %s\n", title, message)
}
