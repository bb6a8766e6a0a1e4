package catalog

// builtinRecords is the archive as shipped. Order is the canonical store
// order used by every view.
var builtinRecords = []Specimen{
	// Transport
	{
		ID: "TR-001", Title: "地铁报站声 (1号线)", TitleEn: "Subway Line 1 Announcements",
		Category: CategoryTransport, District: DistrictDongcheng, Location: "Wangfujing Station",
		Duration: "00:45", Era: EraModern, TimeOfDay: TimeMorning,
		Description: "The iconic robotic yet welcoming voice announcing arrival at the commercial heart of Beijing. Distinct from the newer lines.",
		Freq:        []int{40, 60, 80, 30, 50, 90, 40, 20},
	},
	{
		ID: "TR-002", Title: "三环路早高峰车流", TitleEn: "3rd Ring Road Morning Rush",
		Category: CategoryTransport, District: DistrictChaoyang, Location: "Guomao Bridge",
		Duration: "02:30", Era: EraModern, TimeOfDay: TimeMorning,
		Description: "A continuous, heavy drone of engines and tires on asphalt, punctuated by distant horns.",
		Freq:        []int{80, 85, 80, 75, 80, 85, 80, 75},
	},
	{
		ID: "TR-003", Title: "老式公交车售票员", TitleEn: "Vintage Bus Conductor",
		Category: CategoryTransport, District: DistrictFengtai, Location: "Route 300 Outer Ring",
		Duration: "00:25", Era: Era1980s, TimeOfDay: TimeNoon,
		Description: "Archival recording of a conductor manually announcing stops with a heavy Beijing accent.",
		Freq:        []int{30, 60, 40, 70, 30, 50, 20, 10},
	},
	{
		ID: "TR-004", Title: "共享单车解锁音群", TitleEn: "Bike Share Unlock Chimes",
		Category: CategoryTransport, District: DistrictHaidian, Location: "Wudaokou Subway Exit",
		Duration: "01:10", Era: EraModern, TimeOfDay: TimeMorning,
		Description: "A cluster of electronic unlocking sounds mixed with the mechanical snap of locks opening.",
		Freq:        []int{90, 20, 90, 10, 80, 20, 90, 10},
	},

	// Daily life
	{
		ID: "DL-001", Title: "胡同鸽哨", TitleEn: "Hutong Pigeon Whistles",
		Category: CategoryDailyLife, District: DistrictXicheng, Location: "Shichahai",
		Duration: "00:55", Era: EraOldBeijing, TimeOfDay: TimeMorning,
		Description: "The haunting, high-pitched resonance of whistles attached to pigeons flying over grey tiles.",
		Freq:        []int{10, 30, 80, 90, 80, 30, 10, 0},
	},
	{
		ID: "DL-002", Title: "早市讨价还价", TitleEn: "Morning Market Bargaining",
		Category: CategoryDailyLife, District: DistrictXicheng, Location: "Yuetan Market",
		Duration: "01:45", Era: EraPost2000, TimeOfDay: TimeMorning,
		Description: "Energetic exchanges between vendors and elderly residents over the price of vegetables.",
		Freq:        []int{50, 70, 60, 80, 50, 70, 40, 60},
	},
	{
		ID: "DL-003", Title: "麻将馆洗牌声", TitleEn: "Mahjong Tile Shuffling",
		Category: CategoryDailyLife, District: DistrictFengtai, Location: "Community Center",
		Duration: "00:40", Era: EraModern, TimeOfDay: TimeEvening,
		Description: "The crisp, chaotic clatter of hard plastic tiles being washed on a table.",
		Freq:        []int{80, 90, 70, 90, 80, 60, 40, 20},
	},
	{
		ID: "DL-004", Title: "三里屯夜店低频外溢", TitleEn: "Sanlitun Club Bass Spillover",
		Category: CategoryDailyLife, District: DistrictChaoyang, Location: "Bar Street",
		Duration: "02:10", Era: EraModern, TimeOfDay: TimeNight,
		Description: "Muffled bass frequencies leaking from clubs, mixed with luxury car engines.",
		Freq:        []int{90, 80, 90, 70, 60, 50, 30, 20},
	},

	// Ritual
	{
		ID: "RT-001", Title: "天安门升旗脚步声", TitleEn: "Flag Raising Guard Steps",
		Category: CategoryRitual, District: DistrictDongcheng, Location: "Tiananmen Square",
		Duration: "01:05", Era: EraModern, TimeOfDay: TimeMorning,
		Description: "The synchronized, crisp sound of the Honor Guard boots striking the pavement. Absolute precision.",
		Freq:        []int{80, 10, 80, 10, 80, 10, 80, 10},
	},
	{
		ID: "RT-002", Title: "故宫游客人流低频", TitleEn: "Forbidden City Crowd Drone",
		Category: CategoryRitual, District: DistrictDongcheng, Location: "Meridian Gate",
		Duration: "03:00", Era: EraModern, TimeOfDay: TimeNoon,
		Description: "A massive, low-frequency hum generated by thousands of visitors walking on stone bricks.",
		Freq:        []int{60, 60, 65, 60, 60, 65, 60, 60},
	},
	{
		ID: "RT-003", Title: "大钟寺钟声", TitleEn: "Big Bell Temple Toll",
		Category: CategoryRitual, District: DistrictHaidian, Location: "Big Bell Temple",
		Duration: "00:20", Era: EraOldBeijing, TimeOfDay: TimeEvening,
		Description: "Deep, resonant metallic vibrations that can be heard for kilometers.",
		Freq:        []int{100, 80, 60, 40, 20, 10, 5, 0},
	},

	// Campus
	{
		ID: "CP-001", Title: "大学下课铃声", TitleEn: "University Dismissal Bell",
		Category: CategoryCampus, District: DistrictHaidian, Location: "Tsinghua University",
		Duration: "00:15", Era: EraModern, TimeOfDay: TimeNoon,
		Description: "The specific electronic chime marking the end of morning classes, followed by hallway commotion.",
		Freq:        []int{50, 90, 50, 90, 40, 20, 10, 0},
	},
	{
		ID: "CP-002", Title: "晨读声 (多语种)", TitleEn: "Morning Reading (Multilingual)",
		Category: CategoryCampus, District: DistrictHaidian, Location: "BFSU Campus",
		Duration: "01:30", Era: EraModern, TimeOfDay: TimeMorning,
		Description: "A mix of English, Arabic, and Russian being read aloud near the library.",
		Freq:        []int{30, 40, 50, 40, 30, 40, 50, 40},
	},
	{
		ID: "CP-003", Title: "图书馆翻书声", TitleEn: "Library Page Turning",
		Category: CategoryCampus, District: DistrictHaidian, Location: "National Library",
		Duration: "02:00", Era: EraModern, TimeOfDay: TimeNoon,
		Description: "Near-silence punctuated by the crisp texture of paper being turned and soft keyboard typing.",
		Freq:        []int{5, 10, 0, 5, 15, 0, 5, 0},
	},

	// Nature
	{
		ID: "NA-001", Title: "夏日蝉鸣 (奥森)", TitleEn: "Olympic Forest Cicadas",
		Category: CategoryNature, District: DistrictChaoyang, Location: "Olympic Forest Park",
		Duration: "05:00", Era: EraModern, TimeOfDay: TimeNoon,
		Description: "An overwhelming wall of sound generated by thousands of cicadas in July heat.",
		Freq:        []int{95, 95, 95, 90, 85, 90, 95, 95},
	},
	{
		ID: "NA-002", Title: "昆明湖冰裂声", TitleEn: "Kunming Lake Ice Cracks",
		Category: CategoryNature, District: DistrictHaidian, Location: "Summer Palace",
		Duration: "00:35", Era: EraModern, TimeOfDay: TimeNoon,
		Description: "The deep, eerie acoustic dispersion of shifting ice sheets in winter.",
		Freq:        []int{10, 80, 20, 10, 90, 10, 20, 10},
	},
	{
		ID: "NA-003", Title: "延庆风声", TitleEn: "Yanqing Mountain Wind",
		Category: CategoryNature, District: DistrictYanqing, Location: "Badaling",
		Duration: "01:20", Era: EraModern, TimeOfDay: TimeEvening,
		Description: "High-altitude winds whipping through the mountain passes and watchtowers.",
		Freq:        []int{70, 60, 50, 40, 60, 70, 50, 40},
	},

	// Industrial
	{
		ID: "IN-001", Title: "丰台站金属摩擦声", TitleEn: "Fengtai Station Rail Screech",
		Category: CategoryIndustrial, District: DistrictFengtai, Location: "Fengtai Railway Station",
		Duration: "00:50", Era: EraModern, TimeOfDay: TimeNight,
		Description: "The high-pitched metallic friction of heavy trains changing tracks.",
		Freq:        []int{10, 20, 90, 100, 90, 20, 10, 0},
	},
	{
		ID: "IN-002", Title: "大兴机场大堂混响", TitleEn: "Daxing Airport Reverb",
		Category: CategoryIndustrial, District: DistrictDaxing, Location: "Terminal Main Hall",
		Duration: "02:00", Era: EraModern, TimeOfDay: TimeNoon,
		Description: `A "Cathedral-like" quietness where footsteps dissolve into a vast, smooth acoustic space.`,
		Freq:        []int{20, 20, 25, 20, 15, 20, 20, 15},
	},
	{
		ID: "IN-003", Title: "通州运河水声", TitleEn: "Grand Canal Water Flow",
		Category: CategoryIndustrial, District: DistrictTongzhou, Location: "Canal Cultural Square",
		Duration: "01:10", Era: EraModern, TimeOfDay: TimeMorning,
		Description: "Water lapping against the stone embankments mixed with distant bridge traffic.",
		Freq:        []int{40, 50, 40, 30, 40, 50, 40, 30},
	},

	// Culture
	{
		ID: "CU-001", Title: "老北京叫卖 (冰糖葫芦)", TitleEn: "Traditional Hawking: Tanghulu",
		Category: CategoryCulture, District: DistrictXicheng, Location: "Hutong Alleys",
		Duration: "00:12", Era: EraOldBeijing, TimeOfDay: TimeNoon,
		Description: "Archival recording of a street vendor selling candied hawthorn in winter.",
		Freq:        []int{20, 90, 30, 80, 40, 70, 20, 10},
	},
	{
		ID: "CU-002", Title: "京剧排练声", TitleEn: "Peking Opera Rehearsal",
		Category: CategoryCulture, District: DistrictXicheng, Location: "Mei Lanfang Theatre",
		Duration: "00:55", Era: EraModern, TimeOfDay: TimeMorning,
		Description: "Sharp, high-pitched vocal exercises and percussion practice.",
		Freq:        []int{50, 80, 90, 40, 50, 90, 80, 40},
	},

	// Voice
	{
		ID: "VO-001", Title: "胡同大爷侃大山", TitleEn: "Hutong Elders Chatting",
		Category: CategoryVoice, District: DistrictDongcheng, Location: "Nanluoguxiang",
		Duration: "01:40", Era: EraPost2000, TimeOfDay: TimeEvening,
		Description: "Unhurried banter on folding stools outside a courtyard gate, thick with local slang.",
		Freq:        []int{30, 50, 40, 60, 30, 40, 50, 20},
	},
	{
		ID: "VO-002", Title: "京片子儿化音", TitleEn: "Erhua Dialect Drills",
		Category: CategoryVoice, District: DistrictXicheng, Location: "Dashilar",
		Duration: "00:50", Era: EraOldBeijing, TimeOfDay: TimeNoon,
		Description: "A retired broadcaster rolling through the curled 'r' endings that mark the city accent.",
		Freq:        []int{20, 60, 70, 50, 60, 70, 40, 10},
	},
	{
		ID: "VO-003", Title: "景山公园合唱团", TitleEn: "Jingshan Park Choir",
		Category: CategoryVoice, District: DistrictDongcheng, Location: "Jingshan Park",
		Duration: "03:10", Era: EraModern, TimeOfDay: TimeMorning,
		Description: "Dozens of retirees singing revolutionary songs in harmony beneath the pavilion.",
		Freq:        []int{60, 70, 80, 70, 60, 70, 80, 70},
	},
}

// Builtin returns a copy of the shipped records.
func Builtin() []Specimen {
	out := make([]Specimen, len(builtinRecords))
	for i, rec := range builtinRecords {
		out[i] = rec.Normalized()
	}
	return out
}
