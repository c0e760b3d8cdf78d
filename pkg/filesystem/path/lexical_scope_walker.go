package path

type lexicalScopeWalker struct{}

func (lexicalScopeWalker) OnAbsolute() (ComponentWalker, error) {
	return LexicalComponentWalker, nil
}

func (lexicalScopeWalker) OnRelative() (ComponentWalker, error) {
	return LexicalComponentWalker, nil
}

func (lexicalScopeWalker) OnDriveLetter(drive rune) (ComponentWalker, error) {
	return LexicalComponentWalker, nil
}

func (lexicalScopeWalker) OnShare(server, share string) (ComponentWalker, error) {
	return LexicalComponentWalker, nil
}

// LexicalScopeWalker is an instance of ScopeWalker that accepts both
// relative and rooted paths, and can resolve any filename. Unlike
// VoidScopeWalker it reports every directory as being reversible,
// meaning that a Builder decorating it cancels pathname components
// against ".." without consulting a file system. A ".." for which no
// component is left to cancel is still recorded literally.
var LexicalScopeWalker ScopeWalker = lexicalScopeWalker{}

type lexicalComponentWalker struct{}

func (cw lexicalComponentWalker) OnDirectory(name Component) (GotDirectoryOrSymlink, error) {
	return GotDirectory{
		Child:        LexicalComponentWalker,
		IsReversible: true,
	}, nil
}

func (cw lexicalComponentWalker) OnTerminal(name Component) (*GotSymlink, error) {
	return OnTerminalViaOnDirectory(cw, name)
}

func (cw lexicalComponentWalker) OnUp() (ComponentWalker, error) {
	return LexicalComponentWalker, nil
}

// LexicalComponentWalker is the ComponentWalker counterpart of
// LexicalScopeWalker.
var LexicalComponentWalker ComponentWalker = lexicalComponentWalker{}
