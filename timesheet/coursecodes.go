package timesheet

// CourseCodes is the suggestion vocabulary for the course-code field. It is
// advisory only; entries are never rejected for using a code outside it.
var CourseCodes = []string{
	"ACCT1010", "AISC1000", "AISC1001", "AISC1002", "AISC1003", "AISC1004", "AISC1005", "AISC1006",
	"AISC2000", "AISC2001", "AISC2002", "AISC2003", "AISC2004", "AISC2005", "AISC2006", "AISC2007",
	"AISC2008", "AISC2009", "AISC2010", "AISC2011", "AISC2012", "AISC2013", "AISC2016", "AISC2017",
	"AISC3002", "BUSI1002", "BUSI1016", "BUSI1019", "BUSI1020", "BUSI1021", "BUSI1022", "BUSI1023",
	"BUSI1025", "BUSI1033", "BUSI1034", "BUSI1035", "BUSI1036", "BUSI1037", "BUSI1038", "BUSI1039",
	"BUSI2001", "BUSI2002", "BUSI2004", "BUSI2009", "BUSI2016", "BUSI2017", "BUSI2019", "BUSI2023",
	"BUSI2025", "BUSI3005", "BUSI3007", "BUSI3011", "BUSI3024", "BUSI3034", "CLOD1000", "CLOD1001",
	"CLOD1002", "CLOD1003", "CLOD1004", "CLOD1005", "CLOD2000", "CLOD2001", "CLOD2002", "CLOD2003",
	"CLOD2004", "CLOD2005", "CLOD2006", "CLOD2007", "CLOD2008", "COMM1066", "COMM1067", "COMM1076",
	"COMM1083", "COMP1021", "COMP1022", "COMP1025", "COMP1026", "COMP1027", "COMP1028", "COMP1029",
	"COMP1030", "COMP1031", "COMP1032", "COMP2005", "COMP2006", "COMP2007", "COMP2008", "COMP2009",
	"COMP2010", "COMP2011", "COMP2012", "COMP2013", "CSDD1000", "CSDD1001", "CSDD1002", "CSDD1003",
	"CSDD1004", "CSDD1005", "CSDD1006", "CSDD1007", "CSDD1008", "CSDD2000", "CSDD2001", "CSDD2002",
	"CSDD2003", "CSDD2004", "CYSE1000", "CYSE1001", "CYSE1002", "CYSE1003", "CYSE1004", "CYSE1005",
	"CYSE1006", "CYSE1007", "CYSE1008", "CYSE1009", "CYSE2000", "CYSE2001", "CYSE2002", "CYSE2003",
	"CYSE2004", "ECON2000", "ENTR2009", "GBMG1000", "GBMG1001", "GBMG1002", "GBMG1003", "GBMG1004",
	"GBMG1005", "GBMG2000", "GBMG2001", "GBMG2002", "GBMG2003", "GBMG2004", "GBMG2005", "GBMG2007",
	"GNED1009", "GNED1044", "GNED1052", "GNED1100", "GPMG2000", "GPMG2001", "GPMG2002", "GPMG2003",
	"GPMG2004", "GPMG2006", "GPMG2009", "GPMG2010", "GPMG2011", "HOSP1041", "HOSP1042", "HOSP1043",
	"HOSP1044", "HOSP1045", "HRPG3002", "HRPG3004", "LAWS2018", "LOGS1004", "LOGS1005", "LOGS1009",
	"LOGS1010", "LOGS1011", "LOGS2000", "LOGS2001", "LOGS2002", "LOGS2003", "LOGS2004", "LOGS2005",
	"LOGS2006", "LOGS2013", "LOGS2014", "LOGS3000", "MATH1033", "MATH1044", "MATH1045", "MATH1047",
	"MATH2014", "MEDI1022", "MRKT1005", "MRKT1011", "MRKT2006", "MRKT2007", "MRKT2008", "PROF1018",
	"PROF1020", "PROF1021", "PROF2035", "PROF2044", "PROF2045", "PROF2047", "QEMG1000", "QEMG1001",
	"QEMG1002", "QEMG1003", "QEMG1004", "QEMG1005", "QEMG1006", "QEMG2000", "QEMG2001", "QEMG2002",
	"QEMG2003", "QEMG2004", "QEMG2005", "QEMG2006", "QEMG2007", "QEMG2008", "QEMG2009", "QEMG2010",
	"QEMG2011", "QEMG2012", "QEMG2013", "QEMG2015", "QEMG2016", "QEMG3002", "SALE1006", "SALE1010",
	"SALE2015", "SALE2016", "SALE2017", "SUST1000", "SUST1002", "SUST2001", "WINP1000", "WINP1001",
	"WINP1002", "WINP1003", "WINP1004", "WINP1005", "WINP1006", "WINP1007", "WINP1008", "WINP1009",
	"WINP1010", "WINP2000", "WINP2001", "WINP2002", "WINP2003", "WINP2004", "WKPL1040", "WKPL2083",
	"AIP", "Academic Orientaion", "Co-op Orientation", "Co-op Course", "Moodle Orientation",
	"PC Meeting", "PD Session", "Mock Interview", "Tutoring", "Workshop",
}
