package calendar

// julianEasterDates records the Easter Sunday ("MM-DD") for every year of
// the Julian era this package covers, 532 through 1582. The values follow
// the ecclesiastical paschal tables of the 532-year Dionysian cycle, first
// promulgated by Dionysius Exiguus for the year 532 and in continuous use
// until the Gregorian reform of 1582. They are recorded data, not derived
// at runtime: medieval Easter follows the tables as promulgated, and a
// recorded value is auditable against the historical record in a way a
// formula is not.
var julianEasterDates = map[int]string{
	532: "04-11", 533: "03-27", 534: "04-16", 535: "04-08", 536: "03-23", 537: "04-12", 538: "04-04", 539: "04-24", 540: "04-08", 541: "03-31",
	542: "04-20", 543: "04-05", 544: "03-27", 545: "04-16", 546: "04-08", 547: "03-24", 548: "04-12", 549: "04-04", 550: "04-24", 551: "04-09",
	552: "03-31", 553: "04-20", 554: "04-05", 555: "03-28", 556: "04-16", 557: "04-01", 558: "04-21", 559: "04-13", 560: "03-28", 561: "04-17",
	562: "04-09", 563: "03-25", 564: "04-13", 565: "04-05", 566: "03-28", 567: "04-10", 568: "04-01", 569: "04-21", 570: "04-06", 571: "03-29",
	572: "04-17", 573: "04-09", 574: "03-25", 575: "04-14", 576: "04-05", 577: "04-25", 578: "04-10", 579: "04-02", 580: "04-21", 581: "04-06",
	582: "03-29", 583: "04-18", 584: "04-02", 585: "03-25", 586: "04-14", 587: "03-30", 588: "04-18", 589: "04-10", 590: "03-26", 591: "04-15",
	592: "04-06", 593: "03-29", 594: "04-11", 595: "04-03", 596: "04-22", 597: "04-14", 598: "03-30", 599: "04-19", 600: "04-10", 601: "03-26",
	602: "04-15", 603: "04-07", 604: "03-22", 605: "04-11", 606: "04-03", 607: "04-23", 608: "04-07", 609: "03-30", 610: "04-19", 611: "04-04",
	612: "03-26", 613: "04-15", 614: "03-31", 615: "04-20", 616: "04-11", 617: "04-03", 618: "04-16", 619: "04-08", 620: "03-30", 621: "04-19",
	622: "04-04", 623: "03-27", 624: "04-15", 625: "03-31", 626: "04-20", 627: "04-12", 628: "03-27", 629: "04-16", 630: "04-08", 631: "03-24",
	632: "04-12", 633: "04-04", 634: "04-24", 635: "04-09", 636: "03-31", 637: "04-20", 638: "04-05", 639: "03-28", 640: "04-16", 641: "04-08",
	642: "03-24", 643: "04-13", 644: "04-04", 645: "04-24", 646: "04-09", 647: "04-01", 648: "04-20", 649: "04-05", 650: "03-28", 651: "04-17",
	652: "04-01", 653: "04-21", 654: "04-13", 655: "03-29", 656: "04-17", 657: "04-09", 658: "03-25", 659: "04-14", 660: "04-05", 661: "03-28",
	662: "04-10", 663: "04-02", 664: "04-21", 665: "04-06", 666: "03-29", 667: "04-18", 668: "04-09", 669: "03-25", 670: "04-14", 671: "04-06",
	672: "04-25", 673: "04-10", 674: "04-02", 675: "04-22", 676: "04-06", 677: "03-29", 678: "04-18", 679: "04-03", 680: "03-25", 681: "04-14",
	682: "03-30", 683: "04-19", 684: "04-10", 685: "03-26", 686: "04-15", 687: "04-07", 688: "03-29", 689: "04-11", 690: "04-03", 691: "04-23",
	692: "04-14", 693: "03-30", 694: "04-19", 695: "04-11", 696: "03-26", 697: "04-15", 698: "04-07", 699: "03-23", 700: "04-11", 701: "04-03",
	702: "04-23", 703: "04-08", 704: "03-30", 705: "04-19", 706: "04-04", 707: "03-27", 708: "04-15", 709: "03-31", 710: "04-20", 711: "04-12",
	712: "04-03", 713: "04-16", 714: "04-08", 715: "03-31", 716: "04-19", 717: "04-04", 718: "03-27", 719: "04-16", 720: "03-31", 721: "04-20",
	722: "04-12", 723: "03-28", 724: "04-16", 725: "04-08", 726: "03-24", 727: "04-13", 728: "04-04", 729: "04-24", 730: "04-09", 731: "04-01",
	732: "04-20", 733: "04-05", 734: "03-28", 735: "04-17", 736: "04-08", 737: "03-24", 738: "04-13", 739: "04-05", 740: "04-24", 741: "04-09",
	742: "04-01", 743: "04-14", 744: "04-05", 745: "03-28", 746: "04-17", 747: "04-02", 748: "04-21", 749: "04-13", 750: "03-29", 751: "04-18",
	752: "04-09", 753: "03-25", 754: "04-14", 755: "04-06", 756: "03-28", 757: "04-10", 758: "04-02", 759: "04-22", 760: "04-06", 761: "03-29",
	762: "04-18", 763: "04-03", 764: "03-25", 765: "04-14", 766: "04-06", 767: "04-19", 768: "04-10", 769: "04-02", 770: "04-22", 771: "04-07",
	772: "03-29", 773: "04-18", 774: "04-03", 775: "03-26", 776: "04-14", 777: "03-30", 778: "04-19", 779: "04-11", 780: "03-26", 781: "04-15",
	782: "04-07", 783: "03-23", 784: "04-11", 785: "04-03", 786: "04-23", 787: "04-08", 788: "03-30", 789: "04-19", 790: "04-11", 791: "03-27",
	792: "04-15", 793: "04-07", 794: "03-23", 795: "04-12", 796: "04-03", 797: "04-23", 798: "04-08", 799: "03-31", 800: "04-19", 801: "04-04",
	802: "03-27", 803: "04-16", 804: "03-31", 805: "04-20", 806: "04-12", 807: "03-28", 808: "04-16", 809: "04-08", 810: "03-31", 811: "04-13",
	812: "04-04", 813: "03-27", 814: "04-16", 815: "04-01", 816: "04-20", 817: "04-12", 818: "03-28", 819: "04-17", 820: "04-08", 821: "03-24",
	822: "04-13", 823: "04-05", 824: "04-24", 825: "04-09", 826: "04-01", 827: "04-21", 828: "04-05", 829: "03-28", 830: "04-17", 831: "04-02",
	832: "03-24", 833: "04-13", 834: "04-05", 835: "04-18", 836: "04-09", 837: "04-01", 838: "04-14", 839: "04-06", 840: "03-28", 841: "04-17",
	842: "04-02", 843: "04-22", 844: "04-13", 845: "03-29", 846: "04-18", 847: "04-10", 848: "03-25", 849: "04-14", 850: "04-06", 851: "03-22",
	852: "04-10", 853: "04-02", 854: "04-22", 855: "04-07", 856: "03-29", 857: "04-18", 858: "04-03", 859: "03-26", 860: "04-14", 861: "04-06",
	862: "04-19", 863: "04-11", 864: "04-02", 865: "04-22", 866: "04-07", 867: "03-30", 868: "04-18", 869: "04-03", 870: "03-26", 871: "04-15",
	872: "03-30", 873: "04-19", 874: "04-11", 875: "03-27", 876: "04-15", 877: "04-07", 878: "03-23", 879: "04-12", 880: "04-03", 881: "04-23",
	882: "04-08", 883: "03-31", 884: "04-19", 885: "04-11", 886: "03-27", 887: "04-16", 888: "04-07", 889: "03-23", 890: "04-12", 891: "04-04",
	892: "04-23", 893: "04-08", 894: "03-31", 895: "04-20", 896: "04-04", 897: "03-27", 898: "04-16", 899: "04-01", 900: "04-20", 901: "04-12",
	902: "03-28", 903: "04-17", 904: "04-08", 905: "03-31", 906: "04-13", 907: "04-05", 908: "03-27", 909: "04-16", 910: "04-01", 911: "04-21",
	912: "04-12", 913: "03-28", 914: "04-17", 915: "04-09", 916: "03-24", 917: "04-13", 918: "04-05", 919: "04-25", 920: "04-09", 921: "04-01",
	922: "04-21", 923: "04-06", 924: "03-28", 925: "04-17", 926: "04-02", 927: "03-25", 928: "04-13", 929: "04-05", 930: "04-18", 931: "04-10",
	932: "04-01", 933: "04-14", 934: "04-06", 935: "03-29", 936: "04-17", 937: "04-02", 938: "04-22", 939: "04-14", 940: "03-29", 941: "04-18",
	942: "04-10", 943: "03-26", 944: "04-14", 945: "04-06", 946: "03-22", 947: "04-11", 948: "04-02", 949: "04-22", 950: "04-07", 951: "03-30",
	952: "04-18", 953: "04-03", 954: "03-26", 955: "04-15", 956: "04-06", 957: "04-19", 958: "04-11", 959: "04-03", 960: "04-22", 961: "04-07",
	962: "03-30", 963: "04-19", 964: "04-03", 965: "03-26", 966: "04-15", 967: "03-31", 968: "04-19", 969: "04-11", 970: "03-27", 971: "04-16",
	972: "04-07", 973: "03-23", 974: "04-12", 975: "04-04", 976: "04-23", 977: "04-08", 978: "03-31", 979: "04-20", 980: "04-11", 981: "03-27",
	982: "04-16", 983: "04-08", 984: "03-23", 985: "04-12", 986: "04-04", 987: "04-24", 988: "04-08", 989: "03-31", 990: "04-20", 991: "04-05",
	992: "03-27", 993: "04-16", 994: "04-01", 995: "04-21", 996: "04-12", 997: "03-28", 998: "04-17", 999: "04-09", 1000: "03-31", 1001: "04-13",
	1002: "04-05", 1003: "03-28", 1004: "04-16", 1005: "04-01", 1006: "04-21", 1007: "04-06", 1008: "03-28", 1009: "04-17", 1010: "04-09", 1011: "03-25",
	1012: "04-13", 1013: "04-05", 1014: "04-25", 1015: "04-10", 1016: "04-01", 1017: "04-21", 1018: "04-06", 1019: "03-29", 1020: "04-17", 1021: "04-02",
	1022: "03-25", 1023: "04-14", 1024: "04-05", 1025: "04-18", 1026: "04-10", 1027: "03-26", 1028: "04-14", 1029: "04-06", 1030: "03-29", 1031: "04-11",
	1032: "04-02", 1033: "04-22", 1034: "04-14", 1035: "03-30", 1036: "04-18", 1037: "04-10", 1038: "03-26", 1039: "04-15", 1040: "04-06", 1041: "03-22",
	1042: "04-11", 1043: "04-03", 1044: "04-22", 1045: "04-07", 1046: "03-30", 1047: "04-19", 1048: "04-03", 1049: "03-26", 1050: "04-15", 1051: "03-31",
	1052: "04-19", 1053: "04-11", 1054: "04-03", 1055: "04-16", 1056: "04-07", 1057: "03-30", 1058: "04-19", 1059: "04-04", 1060: "03-26", 1061: "04-15",
	1062: "03-31", 1063: "04-20", 1064: "04-11", 1065: "03-27", 1066: "04-16", 1067: "04-08", 1068: "03-23", 1069: "04-12", 1070: "04-04", 1071: "04-24",
	1072: "04-08", 1073: "03-31", 1074: "04-20", 1075: "04-05", 1076: "03-27", 1077: "04-16", 1078: "04-08", 1079: "03-24", 1080: "04-12", 1081: "04-04",
	1082: "04-24", 1083: "04-09", 1084: "03-31", 1085: "04-20", 1086: "04-05", 1087: "03-28", 1088: "04-16", 1089: "04-01", 1090: "04-21", 1091: "04-13",
	1092: "03-28", 1093: "04-17", 1094: "04-09", 1095: "03-25", 1096: "04-13", 1097: "04-05", 1098: "03-28", 1099: "04-10", 1100: "04-01", 1101: "04-21",
	1102: "04-06", 1103: "03-29", 1104: "04-17", 1105: "04-09", 1106: "03-25", 1107: "04-14", 1108: "04-05", 1109: "04-25", 1110: "04-10", 1111: "04-02",
	1112: "04-21", 1113: "04-06", 1114: "03-29", 1115: "04-18", 1116: "04-02", 1117: "03-25", 1118: "04-14", 1119: "03-30", 1120: "04-18", 1121: "04-10",
	1122: "03-26", 1123: "04-15", 1124: "04-06", 1125: "03-29", 1126: "04-11", 1127: "04-03", 1128: "04-22", 1129: "04-14", 1130: "03-30", 1131: "04-19",
	1132: "04-10", 1133: "03-26", 1134: "04-15", 1135: "04-07", 1136: "03-22", 1137: "04-11", 1138: "04-03", 1139: "04-23", 1140: "04-07", 1141: "03-30",
	1142: "04-19", 1143: "04-04", 1144: "03-26", 1145: "04-15", 1146: "03-31", 1147: "04-20", 1148: "04-11", 1149: "04-03", 1150: "04-16", 1151: "04-08",
	1152: "03-30", 1153: "04-19", 1154: "04-04", 1155: "03-27", 1156: "04-15", 1157: "03-31", 1158: "04-20", 1159: "04-12", 1160: "03-27", 1161: "04-16",
	1162: "04-08", 1163: "03-24", 1164: "04-12", 1165: "04-04", 1166: "04-24", 1167: "04-09", 1168: "03-31", 1169: "04-20", 1170: "04-05", 1171: "03-28",
	1172: "04-16", 1173: "04-08", 1174: "03-24", 1175: "04-13", 1176: "04-04", 1177: "04-24", 1178: "04-09", 1179: "04-01", 1180: "04-20", 1181: "04-05",
	1182: "03-28", 1183: "04-17", 1184: "04-01", 1185: "04-21", 1186: "04-13", 1187: "03-29", 1188: "04-17", 1189: "04-09", 1190: "03-25", 1191: "04-14",
	1192: "04-05", 1193: "03-28", 1194: "04-10", 1195: "04-02", 1196: "04-21", 1197: "04-06", 1198: "03-29", 1199: "04-18", 1200: "04-09", 1201: "03-25",
	1202: "04-14", 1203: "04-06", 1204: "04-25", 1205: "04-10", 1206: "04-02", 1207: "04-22", 1208: "04-06", 1209: "03-29", 1210: "04-18", 1211: "04-03",
	1212: "03-25", 1213: "04-14", 1214: "03-30", 1215: "04-19", 1216: "04-10", 1217: "03-26", 1218: "04-15", 1219: "04-07", 1220: "03-29", 1221: "04-11",
	1222: "04-03", 1223: "04-23", 1224: "04-14", 1225: "03-30", 1226: "04-19", 1227: "04-11", 1228: "03-26", 1229: "04-15", 1230: "04-07", 1231: "03-23",
	1232: "04-11", 1233: "04-03", 1234: "04-23", 1235: "04-08", 1236: "03-30", 1237: "04-19", 1238: "04-04", 1239: "03-27", 1240: "04-15", 1241: "03-31",
	1242: "04-20", 1243: "04-12", 1244: "04-03", 1245: "04-16", 1246: "04-08", 1247: "03-31", 1248: "04-19", 1249: "04-04", 1250: "03-27", 1251: "04-16",
	1252: "03-31", 1253: "04-20", 1254: "04-12", 1255: "03-28", 1256: "04-16", 1257: "04-08", 1258: "03-24", 1259: "04-13", 1260: "04-04", 1261: "04-24",
	1262: "04-09", 1263: "04-01", 1264: "04-20", 1265: "04-05", 1266: "03-28", 1267: "04-17", 1268: "04-08", 1269: "03-24", 1270: "04-13", 1271: "04-05",
	1272: "04-24", 1273: "04-09", 1274: "04-01", 1275: "04-14", 1276: "04-05", 1277: "03-28", 1278: "04-17", 1279: "04-02", 1280: "04-21", 1281: "04-13",
	1282: "03-29", 1283: "04-18", 1284: "04-09", 1285: "03-25", 1286: "04-14", 1287: "04-06", 1288: "03-28", 1289: "04-10", 1290: "04-02", 1291: "04-22",
	1292: "04-06", 1293: "03-29", 1294: "04-18", 1295: "04-03", 1296: "03-25", 1297: "04-14", 1298: "04-06", 1299: "04-19", 1300: "04-10", 1301: "04-02",
	1302: "04-22", 1303: "04-07", 1304: "03-29", 1305: "04-18", 1306: "04-03", 1307: "03-26", 1308: "04-14", 1309: "03-30", 1310: "04-19", 1311: "04-11",
	1312: "03-26", 1313: "04-15", 1314: "04-07", 1315: "03-23", 1316: "04-11", 1317: "04-03", 1318: "04-23", 1319: "04-08", 1320: "03-30", 1321: "04-19",
	1322: "04-11", 1323: "03-27", 1324: "04-15", 1325: "04-07", 1326: "03-23", 1327: "04-12", 1328: "04-03", 1329: "04-23", 1330: "04-08", 1331: "03-31",
	1332: "04-19", 1333: "04-04", 1334: "03-27", 1335: "04-16", 1336: "03-31", 1337: "04-20", 1338: "04-12", 1339: "03-28", 1340: "04-16", 1341: "04-08",
	1342: "03-31", 1343: "04-13", 1344: "04-04", 1345: "03-27", 1346: "04-16", 1347: "04-01", 1348: "04-20", 1349: "04-12", 1350: "03-28", 1351: "04-17",
	1352: "04-08", 1353: "03-24", 1354: "04-13", 1355: "04-05", 1356: "04-24", 1357: "04-09", 1358: "04-01", 1359: "04-21", 1360: "04-05", 1361: "03-28",
	1362: "04-17", 1363: "04-02", 1364: "03-24", 1365: "04-13", 1366: "04-05", 1367: "04-18", 1368: "04-09", 1369: "04-01", 1370: "04-14", 1371: "04-06",
	1372: "03-28", 1373: "04-17", 1374: "04-02", 1375: "04-22", 1376: "04-13", 1377: "03-29", 1378: "04-18", 1379: "04-10", 1380: "03-25", 1381: "04-14",
	1382: "04-06", 1383: "03-22", 1384: "04-10", 1385: "04-02", 1386: "04-22", 1387: "04-07", 1388: "03-29", 1389: "04-18", 1390: "04-03", 1391: "03-26",
	1392: "04-14", 1393: "04-06", 1394: "04-19", 1395: "04-11", 1396: "04-02", 1397: "04-22", 1398: "04-07", 1399: "03-30", 1400: "04-18", 1401: "04-03",
	1402: "03-26", 1403: "04-15", 1404: "03-30", 1405: "04-19", 1406: "04-11", 1407: "03-27", 1408: "04-15", 1409: "04-07", 1410: "03-23", 1411: "04-12",
	1412: "04-03", 1413: "04-23", 1414: "04-08", 1415: "03-31", 1416: "04-19", 1417: "04-11", 1418: "03-27", 1419: "04-16", 1420: "04-07", 1421: "03-23",
	1422: "04-12", 1423: "04-04", 1424: "04-23", 1425: "04-08", 1426: "03-31", 1427: "04-20", 1428: "04-04", 1429: "03-27", 1430: "04-16", 1431: "04-01",
	1432: "04-20", 1433: "04-12", 1434: "03-28", 1435: "04-17", 1436: "04-08", 1437: "03-31", 1438: "04-13", 1439: "04-05", 1440: "03-27", 1441: "04-16",
	1442: "04-01", 1443: "04-21", 1444: "04-12", 1445: "03-28", 1446: "04-17", 1447: "04-09", 1448: "03-24", 1449: "04-13", 1450: "04-05", 1451: "04-25",
	1452: "04-09", 1453: "04-01", 1454: "04-21", 1455: "04-06", 1456: "03-28", 1457: "04-17", 1458: "04-02", 1459: "03-25", 1460: "04-13", 1461: "04-05",
	1462: "04-18", 1463: "04-10", 1464: "04-01", 1465: "04-14", 1466: "04-06", 1467: "03-29", 1468: "04-17", 1469: "04-02", 1470: "04-22", 1471: "04-14",
	1472: "03-29", 1473: "04-18", 1474: "04-10", 1475: "03-26", 1476: "04-14", 1477: "04-06", 1478: "03-22", 1479: "04-11", 1480: "04-02", 1481: "04-22",
	1482: "04-07", 1483: "03-30", 1484: "04-18", 1485: "04-03", 1486: "03-26", 1487: "04-15", 1488: "04-06", 1489: "04-19", 1490: "04-11", 1491: "04-03",
	1492: "04-22", 1493: "04-07", 1494: "03-30", 1495: "04-19", 1496: "04-03", 1497: "03-26", 1498: "04-15", 1499: "03-31", 1500: "04-19", 1501: "04-11",
	1502: "03-27", 1503: "04-16", 1504: "04-07", 1505: "03-23", 1506: "04-12", 1507: "04-04", 1508: "04-23", 1509: "04-08", 1510: "03-31", 1511: "04-20",
	1512: "04-11", 1513: "03-27", 1514: "04-16", 1515: "04-08", 1516: "03-23", 1517: "04-12", 1518: "04-04", 1519: "04-24", 1520: "04-08", 1521: "03-31",
	1522: "04-20", 1523: "04-05", 1524: "03-27", 1525: "04-16", 1526: "04-01", 1527: "04-21", 1528: "04-12", 1529: "03-28", 1530: "04-17", 1531: "04-09",
	1532: "03-31", 1533: "04-13", 1534: "04-05", 1535: "03-28", 1536: "04-16", 1537: "04-01", 1538: "04-21", 1539: "04-06", 1540: "03-28", 1541: "04-17",
	1542: "04-09", 1543: "03-25", 1544: "04-13", 1545: "04-05", 1546: "04-25", 1547: "04-10", 1548: "04-01", 1549: "04-21", 1550: "04-06", 1551: "03-29",
	1552: "04-17", 1553: "04-02", 1554: "03-25", 1555: "04-14", 1556: "04-05", 1557: "04-18", 1558: "04-10", 1559: "03-26", 1560: "04-14", 1561: "04-06",
	1562: "03-29", 1563: "04-11", 1564: "04-02", 1565: "04-22", 1566: "04-14", 1567: "03-30", 1568: "04-18", 1569: "04-10", 1570: "03-26", 1571: "04-15",
	1572: "04-06", 1573: "03-22", 1574: "04-11", 1575: "04-03", 1576: "04-22", 1577: "04-07", 1578: "03-30", 1579: "04-19", 1580: "04-03", 1581: "03-26",
	1582: "04-15",
}
