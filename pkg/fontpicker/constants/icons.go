package constants

// CheckmarkSVG is the selection marker. It is drawn white and tinted at render time.
const CheckmarkSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24">
<path fill="none" stroke="#FFFFFF" stroke-width="2.5" stroke-linecap="round" stroke-linejoin="round" d="M4 12.5l5 5L20 6.5"/>
</svg>`
