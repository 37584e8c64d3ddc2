package page

// GoTo hides every screen and shows target. The final question is never
// shown directly: asking for it starts the timed reveal, which shows it
// when done. A missing target section makes GoTo a no-op. Once the
// celebration is shown, GoTo does nothing.
func (p *Page) GoTo(target Screen) {
	if p.current == ScreenCelebration {
		return
	}
	switch target {
	case ScreenFourth:
		p.Reveal()
		return
	case ScreenCelebration:
		p.Celebrate()
		return
	}

	el, ok := p.element(target.Element())
	if !ok {
		return
	}
	p.hideScreens()
	el.Hidden = false
	p.current = target

	if target != ScreenFirst {
		p.setText(ElTitle, "")
	}
	p.resumeMusic()
}
