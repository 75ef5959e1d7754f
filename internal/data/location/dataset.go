package location

// divisions lists the eight administrative divisions, in display order.
var divisions = []string{
	"Dhaka",
	"Chattogram",
	"Khulna",
	"Rajshahi",
	"Barisal",
	"Sylhet",
	"Rangpur",
	"Mymensingh",
}

// coverage holds one record per (division, district). Each record carries
// exactly one city and the set of areas served there.
var coverage = []Coverage{
	{Division: "Dhaka", District: "Dhaka", City: "Dhaka", Areas: []string{"Uttara", "Dhanmondi", "Mirpur", "Mohammadpur"}},
	{Division: "Dhaka", District: "Faridpur", City: "Faridpur", Areas: []string{"Goalanda", "Boalmari", "Bhanga"}},
	{Division: "Dhaka", District: "Gazipur", City: "Gazipur", Areas: []string{"Tongi", "Kaliakair", "Sreepur"}},
	{Division: "Dhaka", District: "Gopalganj", City: "Gopalganj", Areas: []string{"Tungipara", "Kotalipara", "Kashiani"}},
	{Division: "Dhaka", District: "Kishoreganj", City: "Kishoreganj", Areas: []string{"Bajitpur", "Kuliarchar", "Pakundia"}},
	{Division: "Dhaka", District: "Madaripur", City: "Madaripur", Areas: []string{"Rajoir", "Kalkini", "Shibchar"}},
	{Division: "Dhaka", District: "Manikganj", City: "Manikganj", Areas: []string{"Saturia", "Shivalaya", "Ghior"}},
	{Division: "Dhaka", District: "Munshiganj", City: "Munshiganj", Areas: []string{"Sreenagar", "Lohajang", "Sirajdikhan"}},
	{Division: "Dhaka", District: "Narayanganj", City: "Narayanganj", Areas: []string{"Fatullah", "Siddhirganj", "Rupganj"}},
	{Division: "Dhaka", District: "Narsingdi", City: "Narsingdi", Areas: []string{"Palash", "Belabo", "Raipura"}},
	{Division: "Dhaka", District: "Rajbari", City: "Rajbari", Areas: []string{"Pangsha", "Kalukhali", "Baliakandi"}},
	{Division: "Dhaka", District: "Shariatpur", City: "Shariatpur", Areas: []string{"Zajira", "Naria", "Gosairhat"}},
	{Division: "Dhaka", District: "Tangail", City: "Tangail", Areas: []string{"Delduar", "Ghatail", "Kalihati"}},
	{Division: "Chattogram", District: "Chattogram", City: "Chattogram", Areas: []string{"Pahartali", "Kotwali", "Halishahar", "Panchlaish", "Agrabad", "Chandgaon"}},
	{Division: "Chattogram", District: "Cox's Bazar", City: "Cox's Bazar", Areas: []string{"Teknaf", "Ukhia", "Chakaria", "Ramu"}},
	{Division: "Chattogram", District: "Cumilla", City: "Cumilla", Areas: []string{"Laksam", "Debidwar", "Chandina", "Muradnagar"}},
	{Division: "Chattogram", District: "Brahmanbaria", City: "Brahmanbaria", Areas: []string{"Nabinagar", "Ashuganj", "Sarail"}},
	{Division: "Chattogram", District: "Chandpur", City: "Chandpur", Areas: []string{"Haimchar", "Matlab", "Shahrasti"}},
	{Division: "Chattogram", District: "Feni", City: "Feni", Areas: []string{"Parshuram", "Daganbhuiyan", "Chhagalnaiya"}},
	{Division: "Chattogram", District: "Khagrachari", City: "Khagrachari", Areas: []string{"Ramgarh", "Mahalchari", "Dighinala"}},
	{Division: "Chattogram", District: "Lakshmipur", City: "Lakshmipur", Areas: []string{"Raipur", "Ramganj", "Kamalnagar"}},
	{Division: "Chattogram", District: "Noakhali", City: "Noakhali", Areas: []string{"Begumganj", "Senbagh", "Chatkhil"}},
	{Division: "Chattogram", District: "Rangamati", City: "Rangamati", Areas: []string{"Baghaichhari", "Kaptai", "Juraichhari"}},
	{Division: "Chattogram", District: "Bandarban", City: "Bandarban", Areas: []string{"Bandarban Sadar", "Thanchi", "Lama", "Rowangchhari"}},
	{Division: "Sylhet", District: "Sylhet", City: "Sylhet", Areas: []string{"Zindabazar", "Ambarkhana", "Dargah Gate", "South Surma", "Subid Bazar", "Tilagor"}},
	{Division: "Sylhet", District: "Moulvibazar", City: "Moulvibazar", Areas: []string{"Sreemangal", "Kamalganj", "Kulaura", "Barlekha"}},
	{Division: "Sylhet", District: "Habiganj", City: "Habiganj", Areas: []string{"Shaistaganj", "Madhabpur", "Chunarughat", "Nabiganj"}},
	{Division: "Sylhet", District: "Sunamganj", City: "Sunamganj", Areas: []string{"Jagannathpur", "Chhatak", "Tahirpur", "Dowarabazar"}},
	{Division: "Rangpur", District: "Rangpur", City: "Rangpur", Areas: []string{"Rangpur Sadar", "Gangachara", "Kaunia", "Badarganj", "Pirganj", "Mithapukur"}},
	{Division: "Rangpur", District: "Dinajpur", City: "Dinajpur", Areas: []string{"Birampur", "Bochaganj", "Chirirbandar", "Phulbari", "Khansama"}},
	{Division: "Rangpur", District: "Thakurgaon", City: "Thakurgaon", Areas: []string{"Baliadangi", "Pirganj", "Ranisankail"}},
	{Division: "Rangpur", District: "Panchagarh", City: "Panchagarh", Areas: []string{"Tetulia", "Debiganj", "Boda", "Atwari"}},
	{Division: "Rangpur", District: "Gaibandha", City: "Gaibandha", Areas: []string{"Fulchhari", "Gobindaganj", "Sadullapur", "Palashbari"}},
	{Division: "Rangpur", District: "Kurigram", City: "Kurigram", Areas: []string{"Bhurungamari", "Nageshwari", "Phulbari", "Rowmari"}},
	{Division: "Rangpur", District: "Lalmonirhat", City: "Lalmonirhat", Areas: []string{"Aditmari", "Hatibandha", "Kaliganj", "Patgram"}},
	{Division: "Rangpur", District: "Nilphamari", City: "Nilphamari", Areas: []string{"Domar", "Dimla", "Jaldhaka", "Kishoreganj", "Saidpur"}},
	{Division: "Khulna", District: "Khulna", City: "Khulna", Areas: []string{"Khalishpur", "Daulatpur", "Sonadanga", "Boyra", "Rupsha"}},
	{Division: "Khulna", District: "Jessore", City: "Jessore", Areas: []string{"Chaugachha", "Jhikargachha", "Manirampur", "Keshabpur", "Bagherpara"}},
	{Division: "Khulna", District: "Satkhira", City: "Satkhira", Areas: []string{"Shyamnagar", "Assasuni", "Tala", "Kalaroa"}},
	{Division: "Khulna", District: "Bagerhat", City: "Bagerhat", Areas: []string{"Fakirhat", "Chitalmari", "Kachua", "Mollahat", "Mongla"}},
	{Division: "Khulna", District: "Magura", City: "Magura", Areas: []string{"Sreepur", "Mohammadpur", "Shalikha"}},
	{Division: "Khulna", District: "Narail", City: "Narail", Areas: []string{"Lohagara", "Kalia", "Narail Sadar"}},
	{Division: "Khulna", District: "Jhenaidah", City: "Jhenaidah", Areas: []string{"Harinakunda", "Shailkupa", "Kaliganj"}},
	{Division: "Khulna", District: "Chuadanga", City: "Chuadanga", Areas: []string{"Alamdanga", "Damurhuda", "Jibannagar"}},
	{Division: "Khulna", District: "Meherpur", City: "Meherpur", Areas: []string{"Mujibnagar", "Gangni"}},
	{Division: "Khulna", District: "Kushtia", City: "Kushtia", Areas: []string{"Kushtia Sadar", "Kumarkhali", "Khoksa", "Mirpur", "Bheramara", "Daulatpur"}},
	{Division: "Rajshahi", District: "Rajshahi", City: "Rajshahi", Areas: []string{"Boalia", "Rajpara", "Motihar", "Shah Makhdum", "Paba"}},
	{Division: "Rajshahi", District: "Natore", City: "Natore", Areas: []string{"Baraigram", "Bagatipara", "Lalpur", "Singra"}},
	{Division: "Rajshahi", District: "Naogaon", City: "Naogaon", Areas: []string{"Manda", "Sapahar", "Porsha", "Patnitala"}},
	{Division: "Rajshahi", District: "Chapainawabganj", City: "Chapainawabganj", Areas: []string{"Shibganj", "Bholahat", "Gomostapur"}},
	{Division: "Rajshahi", District: "Pabna", City: "Pabna", Areas: []string{"Ishwardi", "Bera", "Chatmohar", "Atgharia"}},
	{Division: "Rajshahi", District: "Sirajganj", City: "Sirajganj", Areas: []string{"Ullapara", "Kazipur", "Shahjadpur", "Belkuchi"}},
	{Division: "Rajshahi", District: "Joypurhat", City: "Joypurhat", Areas: []string{"Akkelpur", "Kalai", "Panchbibi"}},
	{Division: "Rajshahi", District: "Bogura", City: "Bogura", Areas: []string{"Sariakandi", "Sonatola", "Gabtali", "Sherpur", "Shajahanpur"}},
	{Division: "Barisal", District: "Barisal", City: "Barisal", Areas: []string{"Band Road", "Cox's Road", "Kawnia", "Rupatali", "Nathullabad"}},
	{Division: "Barisal", District: "Bhola", City: "Bhola", Areas: []string{"Borhanuddin", "Tazumuddin", "Daulatkhan", "Char Fasson"}},
	{Division: "Barisal", District: "Patuakhali", City: "Patuakhali", Areas: []string{"Kalapara", "Mirzaganj", "Dashmina", "Galachipa"}},
	{Division: "Barisal", District: "Pirojpur", City: "Pirojpur", Areas: []string{"Mathbaria", "Bhandaria", "Kawkhali", "Nazirpur"}},
	{Division: "Barisal", District: "Barguna", City: "Barguna", Areas: []string{"Amtali", "Patharghata", "Betagi", "Bamna"}},
	{Division: "Barisal", District: "Jhalokati", City: "Jhalokati", Areas: []string{"Nalchity", "Rajapur", "Kathalia"}},
	{Division: "Mymensingh", District: "Mymensingh", City: "Mymensingh", Areas: []string{"Trishal", "Muktagachha", "Bhaluka", "Phulpur", "Haluaghat"}},
	{Division: "Mymensingh", District: "Netrokona", City: "Netrokona", Areas: []string{"Khaliajuri", "Mohanganj", "Durgapur", "Barhatta"}},
	{Division: "Mymensingh", District: "Jamalpur", City: "Jamalpur", Areas: []string{"Madarganj", "Islampur", "Sarishabari", "Baksiganj"}},
	{Division: "Mymensingh", District: "Sherpur", City: "Sherpur", Areas: []string{"Nakla", "Nalitabari", "Jhenaigati", "Sreebardi"}},
}
