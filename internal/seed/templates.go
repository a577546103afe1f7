package seed

// Template is the content source for one generated review.
type Template struct {
	Rating  int
	Title   string
	Comment string
}

// Pool groups templates by star rating. The zero value is an empty pool.
type Pool struct {
	all      []Template
	byRating map[int][]Template
}

func NewPool(templates []Template) Pool {
	p := Pool{
		all:      append([]Template(nil), templates...),
		byRating: make(map[int][]Template),
	}
	for _, t := range p.all {
		p.byRating[t.Rating] = append(p.byRating[t.Rating], t)
	}
	return p
}

// ByRating returns the templates whose rating is r.
func (p Pool) ByRating(r int) []Template {
	return p.byRating[r]
}

func (p Pool) All() []Template {
	return p.all
}

func (p Pool) Len() int {
	return len(p.all)
}

// DefaultPool is skewed toward 4 and 5 stars on purpose. Keep it that way.
var DefaultPool = NewPool([]Template{
	// 5 stars
	{5, "Exactly what I was looking for", "Took a chance on this and it completely delivered. The build quality is solid and it looks great in my office. Packaging was really well done too."},
	{5, "Worth every penny", "I compared a bunch of options before pulling the trigger on this one. Glad I did. The materials feel premium and it fits my space perfectly."},
	{5, "Super impressed", "Way better than I expected for the price. Setup was easy, maybe 20 minutes total. My coworkers keep asking where I got it."},
	{5, "Solid purchase", "Been using this daily for about two months now and it still looks and feels brand new. Really happy with this one."},
	{5, "Great addition to my setup", "This was the last piece I needed for my home office and it ties everything together. The quality is noticeably better than the cheaper alternatives I had before."},
	{5, "Love it", "Clean design, sturdy construction, and the color is spot on with the product photos. No complaints at all."},
	{5, "10/10 would buy again", "Shipped fast, arrived in perfect condition, and looks amazing on my desk. Already recommended it to a friend."},
	{5, "Better than expected", "I was a little skeptical ordering furniture online but this thing is legit. Heavy duty, well built, and the finish is flawless."},
	{5, "Perfect for working from home", "I work long hours from home and needed something that was comfortable and looked professional on video calls. This checks both boxes."},
	{5, "My favorite purchase this year", "Upgraded from a basic setup and the difference is night and day. Everything about this feels considered and well made."},
	{5, "Really well made", "You can tell this is quality stuff as soon as you take it out of the box. Instructions were clear and it went together without any issues."},
	{5, "Nailed it", "Exactly as described, arrived on time, and the quality speaks for itself. This is how online shopping should work."},
	{5, "So glad I found this", "Was about to settle for something from a big box store but decided to spend a little more. Absolutely worth the upgrade. The attention to detail is obvious."},
	{5, "Looks even better in person", "Photos don't do it justice honestly. The materials are high end and the design is really clean. Gets compliments every time someone sees my office."},

	// 4 stars
	{4, "Really nice, minor issue", "Overall super happy with this. Only thing is one of the pieces was slightly scratched during shipping but it's on the underside so not a big deal."},
	{4, "Good quality, slow shipping", "The product itself is excellent. Took a little longer to arrive than I expected but it was worth the wait. Looks great in my office."},
	{4, "Almost perfect", "Love the design and the build quality. Wish it came in a darker color option but the one I got still works well with my setup."},
	{4, "Solid, would recommend", "Very happy overall. Assembly instructions could have been a little clearer but I figured it out pretty quickly. End result looks fantastic."},
	{4, "Great product, runs a bit small", "Quality is top notch but I'd say it runs slightly smaller than the dimensions suggest. Still works for my space, just something to be aware of."},
	{4, "Happy with it", "Does exactly what I needed. Sturdy, looks clean, and was fairly easy to put together. The only reason it's not 5 stars is the price is a bit steep."},
	{4, "Nice upgrade", "Definite step up from what I had before. The finish is smooth and the construction feels durable. Could use a few more color options though."},
	{4, "Pleasantly surprised", "Wasn't sure what to expect from a brand I hadn't heard of but this is legitimately well made. Knocked off one star because the box arrived pretty beaten up, but the product inside was fine."},

	// 3 stars
	{3, "Decent but not blown away", "It looks nice and does the job but for the price I was expecting slightly better materials. The surface scratches pretty easily. Not bad, just not amazing."},
	{3, "Fine for the price", "Serves its purpose. Nothing wrong with it per se, but it doesn't feel as premium as the photos suggest. Still functional and looks okay in my room."},
	{3, "Mixed feelings", "The design is really nice but the assembly was a pain. One of the pre-drilled holes didn't line up so I had to improvise. End result is fine though."},

	// 2 stars
	{2, "Disappointed", "Expected more for what I paid. The color looked different on my screen and the material feels cheaper in person. Might return it."},

	// 1 star
	{1, "Arrived damaged", "Came with a big dent on the side. Already reached out to support about a replacement. Hopefully the next one is better because I like the design."},
})
