package view

// FlashLevel styles a notice.
type FlashLevel string

const (
	FlashSuccess FlashLevel = "success"
	FlashError   FlashLevel = "error"
	FlashInfo    FlashLevel = "info"
)

// Flash builds the out-of-band notice region. It replaces the page's
// #flash element wherever the fragment lands.
func Flash(level FlashLevel, message string) *Node {
	return Elem("div").
		AddClass("flash", "flash-"+string(level)).
		SetAttr("id", "flash").
		SetAttr("hx-swap-oob", "true").
		SetText(message)
}

// EmptyFlash clears the notice region.
func EmptyFlash() *Node {
	return Elem("div").
		AddClass("flash").
		SetAttr("id", "flash").
		SetAttr("hx-swap-oob", "true")
}
