package geocode

// District is one entry of the carrier's district table for a province.
type District struct {
	Code int    `json:"code"`
	Name string `json:"name"`
}

// staticDistricts holds the offline district-code mappings that have been
// captured by hand for the busiest provinces. The carrier publishes no
// official table; entries here were observed from live reference-API
// responses and are used only when that API cannot be reached.
var staticDistricts = map[int][]District{
	6: {
		{618, "Çankaya"},
		{625, "Keçiören"},
		{629, "Mamak"},
		{633, "Sincan"},
		{636, "Yenimahalle"},
		{616, "Altındağ"},
		{622, "Etimesgut"},
	},
	7: {
		{712, "Muratpaşa"},
		{710, "Kepez"},
		{709, "Konyaaltı"},
		{701, "Alanya"},
		{713, "Manavgat"},
	},
	16: {
		{1616, "Osmangazi"},
		{1612, "Nilüfer"},
		{1621, "Yıldırım"},
		{1606, "İnegöl"},
	},
	34: {
		{3421, "Kadıköy"},
		{3406, "Beşiktaş"},
		{3434, "Üsküdar"},
		{3403, "Bakırköy"},
		{3427, "Şişli"},
		{3417, "Fatih"},
		{3430, "Maltepe"},
		{3409, "Beylikdüzü"},
		{3441, "Ataşehir"},
		{3404, "Başakşehir"},
	},
	35: {
		{3519, "Konak"},
		{3507, "Bornova"},
		{3524, "Karşıyaka"},
		{3505, "Buca"},
		{3513, "Gaziemir"},
	},
}
