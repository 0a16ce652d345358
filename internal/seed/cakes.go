package seed

// 初期カタログ（12種）
var catalog = []cakeSeed{
	{"Chocolate Fudge Cake", "Rich and moist chocolate cake with creamy fudge frosting", "35.99", "https://images.unsplash.com/photo-1578985545062-69928b1d9587?w=500", "Chocolate", "1kg", "Chocolate"},
	{"Vanilla Dream Cake", "Classic vanilla sponge cake with vanilla buttercream", "29.99", "https://images.unsplash.com/photo-1588195538326-c5b1e5b80c0b?w=500", "Vanilla", "1kg", "Vanilla"},
	{"Red Velvet Delight", "Smooth red velvet cake with cream cheese frosting", "39.99", "https://images.unsplash.com/photo-1586985289688-ca3cf47d3e6e?w=500", "Red Velvet", "1kg", "Red Velvet"},
	{"Strawberry Shortcake", "Fresh strawberries with light whipped cream and sponge", "32.99", "https://images.unsplash.com/photo-1565958011703-44f9829ba187?w=500", "Fruit", "1kg", "Strawberry"},
	{"Black Forest Cake", "Chocolate sponge with cherries and whipped cream", "42.99", "https://images.unsplash.com/photo-1606890737304-57a1ca8a5b62?w=500", "Chocolate", "1.5kg", "Chocolate Cherry"},
	{"Lemon Bliss Cake", "Zesty lemon cake with tangy lemon frosting", "28.99", "https://images.unsplash.com/photo-1519915212116-715fb0c02e8a?w=500", "Citrus", "1kg", "Lemon"},
	{"Carrot Walnut Cake", "Moist carrot cake with cream cheese and walnuts", "34.99", "https://images.unsplash.com/photo-1621303837174-89787a7d4729?w=500", "Specialty", "1kg", "Carrot"},
	{"Tiramisu Cake", "Coffee-soaked layers with mascarpone cream", "44.99", "https://images.unsplash.com/photo-1571877227200-a0d98ea607e9?w=500", "Specialty", "1kg", "Coffee"},
	{"Blueberry Cheesecake", "Creamy cheesecake with fresh blueberry topping", "38.99", "https://images.unsplash.com/photo-1533134242820-b4f6b6c5c2b0?w=500", "Cheesecake", "1kg", "Blueberry"},
	{"Oreo Cookies & Cream", "Chocolate cake with Oreo cookies and cream frosting", "36.99", "https://images.unsplash.com/photo-1558961363-fa8fdf82db35?w=500", "Chocolate", "1kg", "Cookies & Cream"},
	{"Raspberry Chocolate Cake", "Dark chocolate cake with raspberry filling", "40.99", "https://images.unsplash.com/photo-1464349095431-e9a21285b5f3?w=500", "Chocolate", "1kg", "Raspberry Chocolate"},
	{"Coconut Paradise Cake", "Tropical coconut cake with coconut cream frosting", "33.99", "https://images.unsplash.com/photo-1606313564200-e75d5e30476c?w=500", "Tropical", "1kg", "Coconut"},
}

type cakeSeed struct {
	name        string
	description string
	price       string
	image       string
	category    string
	weight      string
	flavor      string
}
