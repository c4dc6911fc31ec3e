package store

// Static reference tables for the 8 divisions and 64 districts of
// Bangladesh. Treated as immutable input data.

var divisionTable = []Division{
	{ID: "div-1", Name: "Dhaka", NameBn: "ঢাকা"},
	{ID: "div-2", Name: "Chittagong", NameBn: "চট্টগ্রাম"},
	{ID: "div-3", Name: "Rajshahi", NameBn: "রাজশাহী"},
	{ID: "div-4", Name: "Khulna", NameBn: "খুলনা"},
	{ID: "div-5", Name: "Barisal", NameBn: "বরিশাল"},
	{ID: "div-6", Name: "Sylhet", NameBn: "সিলেট"},
	{ID: "div-7", Name: "Rangpur", NameBn: "রংপুর"},
	{ID: "div-8", Name: "Mymensingh", NameBn: "ময়মনসিংহ"},
}

var districtTable = []District{
	// Dhaka Division (13 districts)
	{ID: "dist-1", Name: "Dhaka", NameBn: "ঢাকা", DivisionID: "div-1"},
	{ID: "dist-2", Name: "Gazipur", NameBn: "গাজীপুর", DivisionID: "div-1"},
	{ID: "dist-3", Name: "Narayanganj", NameBn: "নারায়ণগঞ্জ", DivisionID: "div-1"},
	{ID: "dist-4", Name: "Tangail", NameBn: "টাঙ্গাইল", DivisionID: "div-1"},
	{ID: "dist-5", Name: "Kishoreganj", NameBn: "কিশোরগঞ্জ", DivisionID: "div-1"},
	{ID: "dist-6", Name: "Manikganj", NameBn: "মানিকগঞ্জ", DivisionID: "div-1"},
	{ID: "dist-7", Name: "Munshiganj", NameBn: "মুন্সীগঞ্জ", DivisionID: "div-1"},
	{ID: "dist-8", Name: "Narsingdi", NameBn: "নরসিংদী", DivisionID: "div-1"},
	{ID: "dist-9", Name: "Faridpur", NameBn: "ফরিদপুর", DivisionID: "div-1"},
	{ID: "dist-10", Name: "Gopalganj", NameBn: "গোপালগঞ্জ", DivisionID: "div-1"},
	{ID: "dist-11", Name: "Madaripur", NameBn: "মাদারীপুর", DivisionID: "div-1"},
	{ID: "dist-12", Name: "Rajbari", NameBn: "রাজবাড়ী", DivisionID: "div-1"},
	{ID: "dist-13", Name: "Shariatpur", NameBn: "শরীয়তপুর", DivisionID: "div-1"},

	// Chittagong Division (11 districts)
	{ID: "dist-14", Name: "Chittagong", NameBn: "চট্টগ্রাম", DivisionID: "div-2"},
	{ID: "dist-15", Name: "Comilla", NameBn: "কুমিল্লা", DivisionID: "div-2"},
	{ID: "dist-16", Name: "Cox's Bazar", NameBn: "কক্সবাজার", DivisionID: "div-2"},
	{ID: "dist-17", Name: "Feni", NameBn: "ফেনী", DivisionID: "div-2"},
	{ID: "dist-18", Name: "Noakhali", NameBn: "নোয়াখালী", DivisionID: "div-2"},
	{ID: "dist-19", Name: "Lakshmipur", NameBn: "লক্ষ্মীপুর", DivisionID: "div-2"},
	{ID: "dist-20", Name: "Brahamanbaria", NameBn: "ব্রাহ্মণবাড়িয়া", DivisionID: "div-2"},
	{ID: "dist-21", Name: "Chandpur", NameBn: "চাঁদপুর", DivisionID: "div-2"},
	{ID: "dist-22", Name: "Khagrachhari", NameBn: "খাগড়াছড়ি", DivisionID: "div-2"},
	{ID: "dist-23", Name: "Rangamati", NameBn: "রাঙ্গামাটি", DivisionID: "div-2"},
	{ID: "dist-24", Name: "Bandarban", NameBn: "বান্দরবান", DivisionID: "div-2"},

	// Rajshahi Division (8 districts)
	{ID: "dist-25", Name: "Rajshahi", NameBn: "রাজশাহী", DivisionID: "div-3"},
	{ID: "dist-26", Name: "Bogra", NameBn: "বগুড়া", DivisionID: "div-3"},
	{ID: "dist-27", Name: "Pabna", NameBn: "পাবনা", DivisionID: "div-3"},
	{ID: "dist-28", Name: "Natore", NameBn: "নাটোর", DivisionID: "div-3"},
	{ID: "dist-29", Name: "Nawabganj", NameBn: "চাঁপাইনবাবগঞ্জ", DivisionID: "div-3"},
	{ID: "dist-30", Name: "Naogaon", NameBn: "নওগাঁ", DivisionID: "div-3"},
	{ID: "dist-31", Name: "Joypurhat", NameBn: "জয়পুরহাট", DivisionID: "div-3"},
	{ID: "dist-32", Name: "Sirajganj", NameBn: "সিরাজগঞ্জ", DivisionID: "div-3"},

	// Khulna Division (10 districts)
	{ID: "dist-33", Name: "Khulna", NameBn: "খুলনা", DivisionID: "div-4"},
	{ID: "dist-34", Name: "Jessore", NameBn: "যশোর", DivisionID: "div-4"},
	{ID: "dist-35", Name: "Satkhira", NameBn: "সাতক্ষীরা", DivisionID: "div-4"},
	{ID: "dist-36", Name: "Narail", NameBn: "নড়াইল", DivisionID: "div-4"},
	{ID: "dist-37", Name: "Kushtia", NameBn: "কুষ্টিয়া", DivisionID: "div-4"},
	{ID: "dist-38", Name: "Meherpur", NameBn: "মেহেরপুর", DivisionID: "div-4"},
	{ID: "dist-39", Name: "Chuadanga", NameBn: "চুয়াডাঙ্গা", DivisionID: "div-4"},
	{ID: "dist-40", Name: "Jhenaidah", NameBn: "ঝিনাইদহ", DivisionID: "div-4"},
	{ID: "dist-41", Name: "Magura", NameBn: "মাগুরা", DivisionID: "div-4"},
	{ID: "dist-42", Name: "Bagerhat", NameBn: "বাগেরহাট", DivisionID: "div-4"},

	// Barisal Division (6 districts)
	{ID: "dist-43", Name: "Barisal", NameBn: "বরিশাল", DivisionID: "div-5"},
	{ID: "dist-44", Name: "Patuakhali", NameBn: "পটুয়াখালী", DivisionID: "div-5"},
	{ID: "dist-45", Name: "Bhola", NameBn: "ভোলা", DivisionID: "div-5"},
	{ID: "dist-46", Name: "Pirojpur", NameBn: "পিরোজপুর", DivisionID: "div-5"},
	{ID: "dist-47", Name: "Jhalokati", NameBn: "ঝালকাঠি", DivisionID: "div-5"},
	{ID: "dist-48", Name: "Barguna", NameBn: "বরগুনা", DivisionID: "div-5"},

	// Sylhet Division (4 districts)
	{ID: "dist-49", Name: "Sylhet", NameBn: "সিলেট", DivisionID: "div-6"},
	{ID: "dist-50", Name: "Maulvibazar", NameBn: "মৌলভীবাজার", DivisionID: "div-6"},
	{ID: "dist-51", Name: "Habiganj", NameBn: "হবিগঞ্জ", DivisionID: "div-6"},
	{ID: "dist-52", Name: "Sunamganj", NameBn: "সুনামগঞ্জ", DivisionID: "div-6"},

	// Rangpur Division (8 districts)
	{ID: "dist-53", Name: "Rangpur", NameBn: "রংপুর", DivisionID: "div-7"},
	{ID: "dist-54", Name: "Dinajpur", NameBn: "দিনাজপুর", DivisionID: "div-7"},
	{ID: "dist-55", Name: "Gaibandha", NameBn: "গাইবান্ধা", DivisionID: "div-7"},
	{ID: "dist-56", Name: "Kurigram", NameBn: "কুড়িগ্রাম", DivisionID: "div-7"},
	{ID: "dist-57", Name: "Lalmonirhat", NameBn: "লালমনিরহাট", DivisionID: "div-7"},
	{ID: "dist-58", Name: "Nilphamari", NameBn: "নীলফামারী", DivisionID: "div-7"},
	{ID: "dist-59", Name: "Thakurgaon", NameBn: "ঠাকুরগাঁও", DivisionID: "div-7"},
	{ID: "dist-60", Name: "Panchagarh", NameBn: "পঞ্চগড়", DivisionID: "div-7"},

	// Mymensingh Division (4 districts)
	{ID: "dist-61", Name: "Mymensingh", NameBn: "ময়মনসিংহ", DivisionID: "div-8"},
	{ID: "dist-62", Name: "Jamalpur", NameBn: "জামালপুর", DivisionID: "div-8"},
	{ID: "dist-63", Name: "Netrakona", NameBn: "নেত্রকোনা", DivisionID: "div-8"},
	{ID: "dist-64", Name: "Sherpur", NameBn: "শেরপুর", DivisionID: "div-8"},
}

var partyTable = []Party{
	{ID: "party-1", Name: "National Citizen Party", Abbreviation: "NCP", Color: "#006A4E"},
	{ID: "party-2", Name: "Bangladesh Nationalist Party", Abbreviation: "BNP", Color: "#E8112D"},
	{ID: "party-3", Name: "Jatiya Party", Abbreviation: "JP", Color: "#FFD700"},
	{ID: "party-4", Name: "Jamaat-e-Islami", Abbreviation: "JI", Color: "#008000"},
	{ID: "party-5", Name: "Jatiya Samajtantrik Dal", Abbreviation: "JSD", Color: "#FF6347"},
	{ID: "party-6", Name: "Workers Party", Abbreviation: "WP", Color: "#CC0000"},
	{ID: "party-7", Name: "Bangladesh Tarikat Federation", Abbreviation: "BTF", Color: "#4169E1"},
	{ID: "party-8", Name: "Gono Forum", Abbreviation: "GF", Color: "#800080"},
	{ID: "party-9", Name: "Nagorik Oikya", Abbreviation: "NO", Color: "#2F4F4F"},
	{ID: "party-10", Name: "Independent", Abbreviation: "IND", Color: "#808080"},
}

var adminTable = []Admin{
	{ID: "admin-1", Email: "admin@demo.com", Name: "Demo Admin", Role: "admin"},
	{ID: "admin-2", Email: "superadmin@demo.com", Name: "Super Admin", Role: "superadmin"},
}
